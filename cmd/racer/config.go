package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the search
path, --config and --difficulty are applied.`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigCheck,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigCheck(cmd *cobra.Command, args []string) {
	path := args[0]

	cfg, err := config.LoadRacer(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s is invalid:\n%v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid\n", path)
}
