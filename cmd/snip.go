package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/sells-group/gsq/internal/entity"
)

var snipCmd = &cobra.Command{
	Use:   "snip",
	Short: "Abbreviate long entities for terminal reading",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSnip(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Snip.MaxLen)
	},
}

func runSnip(in io.Reader, out io.Writer, maxLen int) error {
	return eachEntity(in, func(e *entity.Entity) error {
		_, err := fmt.Fprintln(out, snipLine(e.Raw, maxLen))
		return err
	})
}

// snipLine keeps the head and tail of an over-long line with an ellipsis
// between. Lines at or under maxLen pass through untouched. The cut points
// back off to rune boundaries so multi-byte input stays valid UTF-8.
func snipLine(s string, maxLen int) string {
	if maxLen < 8 || len(s) <= maxLen {
		return s
	}
	keep := (maxLen - 5) / 2

	head := keep
	for head > 0 && !utf8.RuneStart(s[head]) {
		head--
	}
	tail := len(s) - keep
	for tail < len(s) && !utf8.RuneStart(s[tail]) {
		tail++
	}
	return s[:head] + " ... " + s[tail:]
}

func init() { rootCmd.AddCommand(snipCmd) }
