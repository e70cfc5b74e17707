package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/munge"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Best-guess conversions from geo-oriented JSON to GeoJSON",
}

var jsonMungeCmd = &cobra.Command{
	Use:   "munge",
	Short: "Convert arbitrary JSON objects to GeoJSON Features",
	Long: `Coerces each STDIN line of JSON into a GeoJSON Feature. An embedded
"geometry" member is used directly; otherwise latitude/longitude-style keys
(lat, latitude / lon, lng, longitude) become a Point. Everything else is
carried over as properties.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runJSONMunge(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runJSONMunge(in io.Reader, out io.Writer) error {
	return eachEntity(in, func(e *entity.Entity) error {
		f, err := munge.ToFeature(e.Raw)
		if err != nil {
			return err
		}
		s, err := entity.EncodeFeature(f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	})
}

func init() {
	jsonCmd.AddCommand(jsonMungeCmd)
	rootCmd.AddCommand(jsonCmd)
}
