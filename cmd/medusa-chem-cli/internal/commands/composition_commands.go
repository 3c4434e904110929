package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/orlox/medusa/internal/domain/chem"
	"github.com/spf13/cobra"
)

// CompositionCommandHandler loads and normalizes composition configurations.
type CompositionCommandHandler struct{}

// LoadCompositionCmd prints the normalized mass fractions of a composition configuration.
func (commandHandler *CompositionCommandHandler) LoadCompositionCmd(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	log, err := setupLogger(cmd)
	if err != nil {
		return err
	}

	service, err := setupChemistryService(cmd, log)
	if err != nil {
		return err
	}

	result, err := service.LoadComposition(args[0])
	if err != nil {
		return err
	}

	if format == OutputYAML {
		return writeYAML(cmd.OutOrStdout(), result)
	}
	return writeCompositionTable(cmd, result)
}

func writeCompositionTable(cmd *cobra.Command, result *chem.CompositionResult) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if result.Abundances != nil {
		fmt.Fprintln(tw, "SYMBOL\tABUNDANCE\tMASS FRACTION")
		for _, s := range result.Symbols() {
			fmt.Fprintf(tw, "%s\t%.4f\t%.10e\n", s, result.Abundances[s], result.MassFractions[s])
		}
	} else {
		fmt.Fprintln(tw, "SYMBOL\tMASS FRACTION")
		for _, s := range result.Symbols() {
			fmt.Fprintf(tw, "%s\t%.10e\n", s, result.MassFractions[s])
		}
	}
	return tw.Flush()
}

// InitCompositionCommands registers composition commands
func InitCompositionCommands(rootCmd *cobra.Command) error {
	handler := &CompositionCommandHandler{}

	var compositionCmd = &cobra.Command{
		Use:   "composition <config>",
		Short: "Normalize a composition configuration into mass fractions",
		Long: `Reads a YAML composition configuration holding either "abundances"
(12 + log10(nX/nH)) or "mass_fractions" per isotope and prints mass fractions
normalized to one. The configuration is looked up relative to the working
directory first, then in <data-root>/chem/data.`,
		Args: cobra.ExactArgs(1),
		RunE: handler.LoadCompositionCmd,
	}
	rootCmd.AddCommand(compositionCmd)

	return nil
}
