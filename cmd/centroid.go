package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/spatial"
)

var centroidCmd = &cobra.Command{
	Use:   "centroid",
	Short: "Output the centroid of each entity as lat,lon",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCentroid(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runCentroid(in io.Reader, out io.Writer) error {
	return eachGeometry(in, func(g geom.T) error {
		center, err := spatial.Centroid(g)
		if err != nil {
			return err
		}
		s, err := entity.EncodeLatLon(center)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func init() { rootCmd.AddCommand(centroidCmd) }
