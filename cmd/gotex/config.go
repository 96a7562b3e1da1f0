package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/growler/go-tex/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gotex configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a gotex.yaml with the defaults to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.ProjectConfigFile); err == nil {
			return fmt.Errorf("%s already exists", config.ProjectConfigFile)
		}
		if err := config.DefaultConfig().SaveToFile(config.ProjectConfigFile); err != nil {
			return err
		}
		fmt.Println("wrote", config.ProjectConfigFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
