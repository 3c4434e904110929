package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/orlox/medusa/internal/domain/physconst"
	"github.com/spf13/cobra"
)

// ConstantsCommandHandler prints the physical constants table.
type ConstantsCommandHandler struct{}

// ListConstantsCmd prints the named constants, or all of them when no names are given.
func (commandHandler *ConstantsCommandHandler) ListConstantsCmd(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	entries := physconst.All()
	if len(args) > 0 {
		entries = make([]physconst.Entry, 0, len(args))
		for _, name := range args {
			e, ok := physconst.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown constant %q", name)
			}
			entries = append(entries, e)
		}
	}

	if format == OutputYAML {
		return writeYAML(cmd.OutOrStdout(), entries)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALUE\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%.10g\t%s\n", e.Name, e.Value, e.Description)
	}
	return tw.Flush()
}

// InitConstantsCommands registers constants commands
func InitConstantsCommands(rootCmd *cobra.Command) error {
	handler := &ConstantsCommandHandler{}

	var constantsCmd = &cobra.Command{
		Use:   "constants [name...]",
		Short: "Print physical and astronomical constants (cgs)",
		RunE:  handler.ListConstantsCmd,
	}
	rootCmd.AddCommand(constantsCmd)

	return nil
}
