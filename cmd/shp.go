package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/shapefile"
)

var shpCmd = &cobra.Command{
	Use:   "shp <path>",
	Short: "Read a shapefile and convert to GeoJSON",
	Long:  "Reads a .shp file (with its adjacent .dbf) and prints one GeoJSON Feature per record, DBF attributes as properties.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShp(args[0], cmd.OutOrStdout())
	},
}

func runShp(path string, out io.Writer) error {
	features, err := shapefile.Read(path)
	if err != nil {
		return err
	}
	for _, f := range features {
		s, err := entity.EncodeFeature(f)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}

func init() { rootCmd.AddCommand(shpCmd) }
