package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/gsq/internal/entity"
)

var wktCmd = &cobra.Command{
	Use:   "wkt",
	Short: "Output entities as Well-Known Text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWKT(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runWKT(in io.Reader, out io.Writer) error {
	return eachGeometry(in, func(g geom.T) error {
		s, err := entity.EncodeWKT(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func init() { rootCmd.AddCommand(wktCmd) }
