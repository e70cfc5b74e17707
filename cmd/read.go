package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/gsq/internal/entity"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Show how each input line is classified",
	Long: `Prints the detected format of every non-blank STDIN line without
converting it. Useful for debugging inputs before filtering or conversion.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRead(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runRead(in io.Reader, out io.Writer) error {
	return eachEntity(in, func(e *entity.Entity) error {
		_, err := fmt.Fprintf(out, "%s: %s\n", e.Kind, e.Raw)
		return err
	})
}

func init() { rootCmd.AddCommand(readCmd) }
