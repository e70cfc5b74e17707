package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/gsq/internal/entity"
)

var gjCmd = &cobra.Command{
	Use:   "gj",
	Short: "Output entities as GeoJSON",
}

var gjGeomCmd = &cobra.Command{
	Use:   "geom",
	Short: "Output each entity as a GeoJSON geometry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGJGeom(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var gjFeatureCmd = &cobra.Command{
	Use:   "f",
	Short: "Output each entity as a GeoJSON Feature",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGJFeature(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var gjFeatureCollectionCmd = &cobra.Command{
	Use:   "fc",
	Short: "Collect all entities into one GeoJSON FeatureCollection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGJFeatureCollection(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runGJGeom(in io.Reader, out io.Writer) error {
	return eachGeometry(in, func(g geom.T) error {
		s, err := entity.EncodeGeoJSONGeometry(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func runGJFeature(in io.Reader, out io.Writer) error {
	return eachFeature(in, func(f *geojson.Feature) error {
		s, err := entity.EncodeFeature(f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func runGJFeatureCollection(in io.Reader, out io.Writer) error {
	var features []*geojson.Feature
	if err := eachFeature(in, func(f *geojson.Feature) error {
		features = append(features, f)
		return nil
	}); err != nil {
		return err
	}

	s, err := entity.EncodeFeatureCollection(features)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func init() {
	gjCmd.AddCommand(gjGeomCmd, gjFeatureCmd, gjFeatureCollectionCmd)
	rootCmd.AddCommand(gjCmd)
}
