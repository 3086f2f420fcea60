/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved build configuration",
	Long: `Print the configuration build-runner would use, after applying the
.env, the config file, BUILD_RUNNER_* environment variables and flags, together
with the build command and the expected artifact path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(struct {
			Config   any      `yaml:"config"`
			Command  []string `yaml:"command"`
			Artifact string   `yaml:"artifact"`
		}{
			Config:   cfg,
			Command:  cfg.BuildCommand(),
			Artifact: cfg.ArtifactPath(),
		})
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
