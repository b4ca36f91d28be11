package main

import (
	"fmt"
	"os"

	"tabview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var delimiter string
	var maxRows int
	var batchSize int

	cmd := &cobra.Command{
		Use:     "tabview [file]",
		Short:   "View delimited text files in the terminal",
		Version: fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", version, commit, date),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			cfg := ui.Config{
				Delimiter: delimiter,
				MaxRows:   maxRows,
				BatchSize: batchSize,
			}

			p := tea.NewProgram(ui.InitialModel(cfg, path), tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "auto", `delimiter character, "auto" to detect, "\t" for tab`)
	cmd.Flags().IntVar(&maxRows, "max-rows", 10000, "rows loaded initially")
	cmd.Flags().IntVar(&batchSize, "batch-size", 5000, "rows added per load-more request")

	return cmd
}
