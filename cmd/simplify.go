package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/spatial"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify <epsilon>",
	Short: "Simplify geometries with Ramer-Douglas-Peucker",
	Long: `Simplifies each entity's geometry with the given epsilon threshold
(in degrees) and prints the result as GeoJSON. With --to-coord-count the
epsilon argument is a starting point and grows until the geometry fits the
coordinate budget.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		epsilon, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return eris.Errorf("invalid epsilon %q", args[0])
		}
		toCoordCount, _ := cmd.Flags().GetInt("to-coord-count")
		return runSimplify(cmd.InOrStdin(), cmd.OutOrStdout(), epsilon, toCoordCount)
	},
}

func runSimplify(in io.Reader, out io.Writer, epsilon float64, toCoordCount int) error {
	return eachGeometry(in, func(g geom.T) error {
		var simplified geom.T
		var err error
		if toCoordCount > 0 {
			simplified, _, err = spatial.SimplifyToCoordCount(g, toCoordCount)
		} else {
			simplified, err = spatial.Simplify(g, epsilon)
		}
		if err != nil {
			return err
		}

		s, err := entity.EncodeGeoJSONGeometry(simplified)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func init() {
	simplifyCmd.Flags().Int("to-coord-count", 0,
		"grow epsilon until each geometry has at most this many coordinates")
	rootCmd.AddCommand(simplifyCmd)
}
