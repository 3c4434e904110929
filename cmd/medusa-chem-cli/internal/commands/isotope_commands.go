package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/orlox/medusa/internal/domain/chem"
	"github.com/spf13/cobra"
)

// IsotopeCommandHandler prints records from the isotope table.
type IsotopeCommandHandler struct{}

// ListIsotopesCmd prints the named isotopes, or the whole table when no names are given.
func (commandHandler *IsotopeCommandHandler) ListIsotopesCmd(cmd *cobra.Command, args []string) error {
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

	records, err := service.Isotopes(args...)
	if err != nil {
		return err
	}

	if format == OutputYAML {
		return writeYAML(cmd.OutOrStdout(), records)
	}
	return writeIsotopeTable(cmd, records)
}

func writeIsotopeTable(cmd *cobra.Command, records []chem.IsotopeRecord) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tELEMENT\tZ\tA\tATOMIC MASS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.11f\n", r.Symbol, chem.ElementName(r.AtomicNumber), r.AtomicNumber, r.MassNumber, r.AtomicMass)
	}
	return tw.Flush()
}

// InitIsotopeCommands registers isotope table commands
func InitIsotopeCommands(rootCmd *cobra.Command) error {
	handler := &IsotopeCommandHandler{}

	var isotopesCmd = &cobra.Command{
		Use:   "isotopes [symbol...]",
		Short: "List isotopes from the NIST isotope table",
		Long: `Loads the isotope data file and prints atomic number, mass number and
relative atomic mass for the given isotope symbols (e.g. h1, he4, c12),
or for every isotope when no symbol is given.`,
		RunE: handler.ListIsotopesCmd,
	}
	rootCmd.AddCommand(isotopesCmd)

	return nil
}
