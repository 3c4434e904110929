// Package main is the entry point for the medusa-chem-cli application.
// It registers the isotope, composition and constants commands on the root command
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/orlox/medusa/cmd/medusa-chem-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "medusa-chem-cli",
		Short: "Isotope, composition and constants data tool",
		Long: `medusa-chem-cli inspects the chemistry data used by medusa runs.
It reads the NIST isotope table, normalizes composition configurations into
mass fractions and prints the physical constants table.

Data files are resolved below the data root, taken from --data-root or the
MEDUSA_PATH environment variable (a .env file in the working directory is
read when present).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	commands.InitGlobalFlags(rootCmd)

	if err := commands.InitIsotopeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize isotope commands: %w", err)
	}

	if err := commands.InitCompositionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize composition commands: %w", err)
	}

	if err := commands.InitConstantsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize constants commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
