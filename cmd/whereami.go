package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/pkg/iplocate"
)

var whereamiCmd = &cobra.Command{
	Use:   "whereami",
	Short: "GeoJSON Feature for your current location",
	Long:  "Looks up the machine's approximate location by public IP and prints it as a GeoJSON point Feature.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := iplocate.NewClient(
			cfg.Whereami.Endpoint,
			time.Duration(cfg.Whereami.TimeoutSecs)*time.Second,
		)
		loc, err := client.Locate(cmd.Context())
		if err != nil {
			return err
		}

		f := &geojson.Feature{
			Geometry: geom.NewPointFlat(geom.XY, []float64{loc.Lon, loc.Lat}),
			Properties: map[string]any{
				"city":    loc.City,
				"region":  loc.RegionName,
				"country": loc.Country,
				"ip":      loc.Query,
			},
		}
		s, err := entity.EncodeFeature(f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	},
}

func init() { rootCmd.AddCommand(whereamiCmd) }
