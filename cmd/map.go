package main

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/gsq/internal/entity"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "View entities on a geojson.io map",
	Long: `Collects all STDIN entities into a FeatureCollection, embeds it in a
geojson.io URL, and opens the system browser. URLs can only carry so much
data; for bigger inputs, simplify first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var features []*geojson.Feature
		if err := eachFeature(cmd.InOrStdin(), func(f *geojson.Feature) error {
			features = append(features, f)
			return nil
		}); err != nil {
			return err
		}

		mapURL, err := buildMapURL(cfg.Map.BaseURL, features, cfg.Map.MaxURLLen)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), mapURL)
		return browser.OpenURL(mapURL)
	},
}

// buildMapURL embeds a FeatureCollection into a geojson.io data URL.
func buildMapURL(baseURL string, features []*geojson.Feature, maxLen int) (string, error) {
	fc, err := entity.EncodeFeatureCollection(features)
	if err != nil {
		return "", err
	}

	mapURL := baseURL + "#data=data:application/json," + url.PathEscape(fc)
	if maxLen > 0 && len(mapURL) > maxLen {
		return "", eris.Errorf("map: input exceeds the %d byte URL limit; try `gsq simplify` first", maxLen)
	}
	return mapURL, nil
}

func init() { rootCmd.AddCommand(mapCmd) }
