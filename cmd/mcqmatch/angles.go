package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BurntSushi/torsmatch/torsion"
)

func newAnglesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "angles",
		Short: "List the torsion angles that can be compared.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := torsion.DefaultCatalog()
			tabw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 4, ' ', 0)
			fmt.Fprintln(tabw, "Angle\tClass\tMain\tAtoms")
			for _, class := range []torsion.MoleculeClass{
				torsion.Protein, torsion.RNA,
			} {
				for _, t := range cat.Angles(class) {
					isMain := ""
					if t.IsMain() {
						isMain = "yes"
					}
					fmt.Fprintf(tabw, "%s\t%s\t%s\t%s\n",
						t, t.Class(), isMain, t.Atoms())
				}
			}
			return tabw.Flush()
		},
	}
}
