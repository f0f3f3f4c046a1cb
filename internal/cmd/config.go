package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/vimtools/vsm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View vsm configuration",
	Long: `Inspect the current configuration and where it comes from.
The config file is created by 'vsm variant'; editing it by hand is fine
too, it is plain YAML.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Printf("Session directory: %s\n", appconfig.SessionDir())
	fmt.Println()

	fmt.Println("editor:")
	fmt.Printf("  default_variant: %s\n", cfg.Editor.DefaultVariant)
	fmt.Println("logging:")
	fmt.Printf("  level: %s\n", cfg.Logging.Level)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(appconfig.ConfigFile())
	return nil
}
