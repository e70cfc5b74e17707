package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/filter"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Select entities by spatial predicate",
	Long: `Outputs the STDIN entities whose geometry satisfies the predicate
against any query entity. Queries come from a positional argument, a
--query-file of one entity per line, or both. Lines that fail to convert are
dropped with a warning; a bad query aborts the run.`,
}

var filterIntersectsCmd = &cobra.Command{
	Use:   "intersects [query]",
	Short: "Keep entities intersecting a query entity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(cmd, args, filter.PredicateIntersects)
	},
}

var filterContainsCmd = &cobra.Command{
	Use:   "contains [query]",
	Short: "Keep entities falling within a query polygon",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(cmd, args, filter.PredicateContains)
	},
}

func runFilter(cmd *cobra.Command, args []string, pred filter.Predicate) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}

	queryFilePath, _ := cmd.Flags().GetString("query-file")
	var queryFile io.Reader
	if queryFilePath != "" {
		f, err := os.Open(queryFilePath)
		if err != nil {
			return eris.Wrapf(err, "open query file %s", queryFilePath)
		}
		defer func() { _ = f.Close() }()
		queryFile = f
	}

	qs, err := filter.NewQuerySet(arg, queryFile)
	if err != nil {
		return err
	}
	if pred == filter.PredicateContains {
		if err := qs.RequirePolygons(); err != nil {
			return err
		}
	}

	negate, _ := cmd.Flags().GetBool("negate")

	stream := entity.NewStream(cmd.InOrStdin())
	return filter.Run(stream, qs, pred, negate, cmd.OutOrStdout())
}

func init() {
	filterCmd.PersistentFlags().StringP("query-file", "q", "",
		"file of query entities, one per line")
	filterCmd.PersistentFlags().BoolP("negate", "n", false,
		"negate the filter, so intersects becomes 'not intersects', etc.")

	filterCmd.AddCommand(filterIntersectsCmd, filterContainsCmd)
	rootCmd.AddCommand(filterCmd)
}
