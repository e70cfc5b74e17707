package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/spatial"
)

var bboxCmd = &cobra.Command{
	Use:   "bbox",
	Short: "Output bounding boxes for entities",
	Long: `Prints the bounding box of each entity as a GeoJSON polygon. With
--embed the inputs print as Features carrying the GeoJSON bbox member
instead; with --all a single box covering every input prints at the end.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		embed, _ := cmd.Flags().GetBool("embed")
		all, _ := cmd.Flags().GetBool("all")
		return runBBox(cmd.InOrStdin(), cmd.OutOrStdout(), embed, all)
	},
}

func runBBox(in io.Reader, out io.Writer, embed, all bool) error {
	if all {
		return runBBoxAll(in, out)
	}
	if embed {
		return runBBoxEmbed(in, out)
	}
	return eachGeometry(in, func(g geom.T) error {
		s, err := entity.EncodeGeoJSONGeometry(spatial.BBoxPolygon(spatial.BBox(g)))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func runBBoxAll(in io.Reader, out io.Writer) error {
	var bounds *geom.Bounds
	if err := eachGeometry(in, func(g geom.T) error {
		if bounds == nil {
			bounds = geom.NewBounds(geom.XY)
		}
		bounds.Extend(g)
		return nil
	}); err != nil {
		return err
	}
	if bounds == nil {
		return nil
	}

	s, err := entity.EncodeGeoJSONGeometry(spatial.BBoxPolygon(bounds))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func runBBoxEmbed(in io.Reader, out io.Writer) error {
	return eachFeature(in, func(f *geojson.Feature) error {
		f.BBox = spatial.BBox(f.Geometry)
		s, err := entity.EncodeFeature(f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func init() {
	bboxCmd.Flags().BoolP("embed", "e", false,
		"print inputs as Features with the bbox member set")
	bboxCmd.Flags().BoolP("all", "a", false,
		"print one bbox covering all inputs")
	rootCmd.AddCommand(bboxCmd)
}
