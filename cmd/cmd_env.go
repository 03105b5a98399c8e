// cmd_env.go - env Command (Konfiguration anzeigen)
// Listet alle MOBINFER_* Variablen mit aktuellen Werten als Tabelle
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/7blacky7/mobinfer/envconfig"
)

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			envVars := envconfig.AsMap()

			names := make([]string, 0, len(envVars))
			for name := range envVars {
				names = append(names, name)
			}
			sort.Strings(names)

			var data [][]string
			for _, name := range names {
				e := envVars[name]
				data = append(data, []string{e.Name, fmt.Sprintf("%v", e.Value), e.Description})
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}
}
