package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/reel/internal/formatter"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search runs a free-text catalog search.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	catalogService, err := r.requireCatalog()
	if err != nil {
		return err
	}

	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	r.logger.Infof("searching catalog for %q", query)

	result, err := catalogService.Search(ctx, query, cmd.Int("page"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	if len(result.Results) == 0 {
		return r.writePlain("No results for %q\n", query)
	}

	title := fmt.Sprintf("Results for %q — page %d/%d", query, result.Page, result.TotalPages)
	return r.writePlain("%s", formatter.MovieList(title, result.Results))
}
