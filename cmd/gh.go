package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/gsq/internal/entity"
	ghash "github.com/sells-group/gsq/internal/geohash"
)

var ghCmd = &cobra.Command{
	Use:   "gh",
	Short: "Work with geohashes",
}

var ghPointCmd = &cobra.Command{
	Use:   "point <level>",
	Short: "Output the base-32 geohash of each point entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(args[0])
		if err != nil {
			return err
		}
		return runGHPoint(cmd.InOrStdin(), cmd.OutOrStdout(), level)
	},
}

var ghCoveringCmd = &cobra.Command{
	Use:   "covering <level>",
	Short: "Output the geohashes at the given level covering each entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(args[0])
		if err != nil {
			return err
		}
		original, _ := cmd.Flags().GetBool("original")
		return runGHCovering(cmd.InOrStdin(), cmd.OutOrStdout(), level, original)
	},
}

var ghChildrenCmd = &cobra.Command{
	Use:   "children",
	Short: "Output the 32 children of each geohash entity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGHChildren(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var ghRootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "List the base-32 geohash root characters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, root := range ghash.Roots() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), root); err != nil {
				return err
			}
		}
		return nil
	},
}

var ghEncodeLongCmd = &cobra.Command{
	Use:   "encode-long",
	Short: "Convert 64-bit base-10 geohashes to base-32",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGHEncodeLong(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var ghNeighborsCmd = &cobra.Command{
	Use:   "neighbors",
	Short: "Output the neighbors of each geohash entity",
	Long: `Prints each geohash followed by its 8 adjacent cells, giving a 3x3
grid centered on the input. With --exclude only the 8 neighbors print.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exclude, _ := cmd.Flags().GetBool("exclude")
		return runGHNeighbors(cmd.InOrStdin(), cmd.OutOrStdout(), exclude)
	},
}

func parseLevel(arg string) (int, error) {
	level, err := strconv.Atoi(arg)
	if err != nil {
		return 0, eris.Errorf("invalid geohash level %q", arg)
	}
	if err := ghash.ValidatePrecision(level); err != nil {
		return 0, err
	}
	return level, nil
}

func runGHPoint(in io.Reader, out io.Writer, level int) error {
	return eachGeometry(in, func(g geom.T) error {
		hash, err := entity.EncodeGeohash(g, level)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, hash)
		return err
	})
}

func runGHCovering(in io.Reader, out io.Writer, level int, original bool) error {
	return eachEntity(in, func(e *entity.Entity) error {
		if original {
			if _, err := fmt.Fprintln(out, e.Raw); err != nil {
				return err
			}
		}
		geoms, err := e.Geometries()
		if err != nil {
			return err
		}
		for _, g := range geoms {
			cells, err := ghash.Covering(g, level)
			if err != nil {
				return err
			}
			for _, cell := range cells {
				if _, err := fmt.Fprintln(out, cell); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func runGHChildren(in io.Reader, out io.Writer) error {
	return eachGeohash(in, func(hash string) error {
		children, err := ghash.Children(hash)
		if err != nil {
			return err
		}
		for _, child := range children {
			if _, err := fmt.Fprintln(out, child); err != nil {
				return err
			}
		}
		return nil
	})
}

func runGHNeighbors(in io.Reader, out io.Writer, exclude bool) error {
	return eachGeohash(in, func(hash string) error {
		if !exclude {
			if _, err := fmt.Fprintln(out, hash); err != nil {
				return err
			}
		}
		neighbors, err := ghash.Neighbors(hash)
		if err != nil {
			return err
		}
		for _, n := range neighbors {
			if _, err := fmt.Fprintln(out, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func runGHEncodeLong(in io.Reader, out io.Writer) error {
	return eachEntity(in, func(e *entity.Entity) error {
		text := strings.TrimSpace(e.Raw)
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return eris.Errorf("invalid base-10 geohash %q", text)
		}
		_, err = fmt.Fprintln(out, ghash.FromLong(v))
		return err
	})
}

// eachGeohash walks STDIN requiring every entity to be geohash text.
func eachGeohash(in io.Reader, fn func(string) error) error {
	return eachEntity(in, func(e *entity.Entity) error {
		if e.Kind != entity.KindGeohash {
			return eris.Errorf("expected a geohash, got %s: %q", e.Kind, e.Raw)
		}
		return fn(strings.TrimSpace(e.Raw))
	})
}

func init() {
	ghCoveringCmd.Flags().BoolP("original", "o", false,
		"also print the query entity, useful for mapping a geometry with its covering")
	ghNeighborsCmd.Flags().BoolP("exclude", "e", false,
		"exclude the given geohash from its neighbors")

	ghCmd.AddCommand(
		ghPointCmd,
		ghCoveringCmd,
		ghChildrenCmd,
		ghRootsCmd,
		ghEncodeLongCmd,
		ghNeighborsCmd,
	)
	rootCmd.AddCommand(ghCmd)
}
