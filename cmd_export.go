package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"tabview/internal/export"
	"tabview/internal/session"
	"tabview/internal/tabular"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "export <file> [output.xlsx]",
		Short: "Export a delimited file to an XLSX workbook",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := ""
			if len(args) == 2 {
				output = args[1]
			} else {
				ext := filepath.Ext(input)
				output = strings.TrimSuffix(input, ext) + ".xlsx"
			}

			registry := session.NewRegistry()
			doc, err := registry.Open(input)
			if err != nil {
				return err
			}

			table, _, err := tabular.ParseAll(doc.Text, delimiter)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			if err := export.ToXLSX(table.Headers, table.Rows, output); err != nil {
				return err
			}

			fmt.Printf("Exported %d rows to %s\n", table.RowCount(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "auto", `delimiter character, "auto" to detect, "\t" for tab`)

	return cmd
}
