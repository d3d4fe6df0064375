package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdhalbert/tomodoro/internal/adapters/tui"
	"github.com/jdhalbert/tomodoro/internal/config"
)

var showConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit timer and notification settings",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&showConfig, "show", false, "Print current settings instead of editing")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	if showConfig {
		return printConfig()
	}

	saved, err := tui.RunConfigEditor(appConfig)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Println("No changes saved.")
		return nil
	}
	if err := config.Save(appConfig); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println("Settings saved.")
	return nil
}

func printConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Printf("Config file:    %s\n", path)
	fmt.Printf("Work minutes:   %d\n", appConfig.Timer.WorkMinutes)
	fmt.Printf("Break minutes:  %d\n", appConfig.Timer.BreakMinutes)
	fmt.Printf("Tick interval:  %s\n", appConfig.Timer.TickInterval)
	fmt.Printf("Welcome:        %t\n", appConfig.Welcome.Enabled)
	fmt.Printf("Notifications:  %t\n", appConfig.Notifications.Enabled)
	fmt.Printf("Sound:          %t\n", appConfig.Notifications.Sound)
	fmt.Printf("Data directory: %s\n", appConfig.Storage.DataDir)
	return nil
}
