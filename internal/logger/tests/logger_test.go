// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Logger tests

package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/build-runner/internal/logger"
)

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf}, "build-runner")

	log.WithComponent("exec").Debug("resolved tool", map[string]interface{}{"path": "/usr/bin/msbuild"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "build-runner", entry["service"])
	assert.Equal(t, "exec", entry["component"])
	assert.Equal(t, "/usr/bin/msbuild", entry["path"])
	assert.Equal(t, "resolved tool", entry["message"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "error", Format: "json", Output: &buf}, "svc")

	log.Warn("hidden")
	assert.Empty(t, buf.String())

	log.WithError(errors.New("boom")).Error("configuration rejected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "configuration rejected", entry["message"])
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "loud", Format: "json", Output: &buf}, "svc")

	log.Debug("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().WithComponent("x").Error("ignored")
	})
}
