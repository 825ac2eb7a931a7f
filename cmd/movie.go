package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/reel/internal/catalog"
	"github.com/desertthunder/reel/internal/formatter"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// Movie shows one movie's full record, with credits and videos.
func (r *Runner) Movie(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	catalogService, err := r.requireCatalog()
	if err != nil {
		return err
	}

	id, err := movieID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	r.logger.Infof("fetching movie %v", id)

	movie, err := catalogService.Details(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("trailer") {
		url, err := catalog.TrailerURL(movie)
		if err != nil {
			return err
		}
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warnf("failed to open browser automatically %v", err)
			return r.writePlain("Trailer: %s\n", url)
		}
		return r.writePlain("✓ Opening trailer for %s\n", movie.Title)
	}

	if cmd.Bool("json") {
		return r.writeJSON(movie, cmd.Bool("pretty"))
	}

	posterURL := ""
	if movie.PosterPath != "" {
		posterURL = catalogService.Image(movie.PosterPath, "")
	}

	return r.writePlain("%s", formatter.MovieDetail(movie, posterURL))
}

// movieID parses a positional movie id argument.
func movieID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: movie id is required", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid movie id", shared.ErrInvalidArgument, raw)
	}

	return id, nil
}
