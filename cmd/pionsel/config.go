package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/decibelcooper/pionsel/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
