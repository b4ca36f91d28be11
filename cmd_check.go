package main

import (
	"fmt"

	"tabview/internal/session"
	"tabview/internal/tabular"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var delimiter string
	var maxRows int

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a delimited file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := session.NewRegistry()
			doc, err := registry.Open(args[0])
			if err != nil {
				return err
			}

			result, err := tabular.InitialLoad(doc.Text, delimiter, maxRows)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			fmt.Printf("Delimiter:  %s\n", result.Delimiter)
			fmt.Printf("Columns:    %d\n", len(result.Headers))
			fmt.Printf("Rows:       %d loaded, ~%d estimated\n", result.TotalRows, result.EstimatedTotal)
			if result.HasMore {
				fmt.Println("More rows available beyond the loaded cap.")
			}

			if len(result.ParseErrors) == 0 {
				fmt.Println("No parse warnings.")
				return nil
			}
			fmt.Printf("%d parse warning(s):\n", len(result.ParseErrors))
			for _, pe := range result.ParseErrors {
				fmt.Printf("  row %d [%s]: %s\n", pe.RowIndex, pe.Kind, pe.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "auto", `delimiter character, "auto" to detect, "\t" for tab`)
	cmd.Flags().IntVar(&maxRows, "max-rows", 10000, "rows loaded before summarizing")

	return cmd
}
