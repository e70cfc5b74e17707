package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/spatial"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure distances and sizes of entities",
}

var measureDistanceCmd = &cobra.Command{
	Use:   "distance <query>",
	Short: "Haversine distance in meters from a query point to each input point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queryPoint, err := pointOf(entity.New(args[0]))
		if err != nil {
			return eris.Wrapf(err, "query %q", args[0])
		}
		return runMeasureDistance(cmd.InOrStdin(), cmd.OutOrStdout(), queryPoint)
	},
}

var measureCoordCountCmd = &cobra.Command{
	Use:   "coord-count",
	Short: "Count the coordinates in each entity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		asGeoJSON, _ := cmd.Flags().GetBool("geojson")
		return runMeasureCoordCount(cmd.InOrStdin(), cmd.OutOrStdout(), asGeoJSON)
	},
}

func pointOf(e *entity.Entity) (*geom.Point, error) {
	g, err := e.Geometry()
	if err != nil {
		return nil, err
	}
	p, ok := g.(*geom.Point)
	if !ok {
		return nil, eris.Errorf("distance requires points, got %T", g)
	}
	return p, nil
}

func runMeasureDistance(in io.Reader, out io.Writer, query *geom.Point) error {
	return eachEntity(in, func(e *entity.Entity) error {
		p, err := pointOf(e)
		if err != nil {
			return err
		}
		meters := spatial.DistanceMeters(query, p)
		_, err = fmt.Fprintln(out, strconv.FormatFloat(meters, 'f', -1, 64))
		return err
	})
}

func runMeasureCoordCount(in io.Reader, out io.Writer, asGeoJSON bool) error {
	return eachFeature(in, func(f *geojson.Feature) error {
		count := spatial.CoordCount(f.Geometry)
		if !asGeoJSON {
			_, err := fmt.Fprintln(out, count)
			return err
		}

		f.Properties["coord_count"] = count
		s, err := entity.EncodeFeature(f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func init() {
	measureCoordCountCmd.Flags().Bool("geojson", false,
		"print each entity as a Feature with a coord_count property")
	measureCmd.AddCommand(measureDistanceCmd, measureCoordCountCmd)
	rootCmd.AddCommand(measureCmd)
}
