package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/reel/internal/formatter"
	"github.com/desertthunder/reel/internal/models"
	"github.com/urfave/cli/v3"
)

// Browse lists one catalog section; the subcommand name selects the section.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	catalogService, err := r.requireCatalog()
	if err != nil {
		return err
	}

	page := cmd.Int("page")
	section := cmd.Name

	r.logger.Infof("browsing %v page %v", section, page)

	var result *models.Page
	switch section {
	case "now-playing":
		result, err = catalogService.NowPlaying(ctx, page)
	case "upcoming":
		result, err = catalogService.Upcoming(ctx, page)
	case "top-rated":
		result, err = catalogService.TopRated(ctx, page)
	default:
		result, err = catalogService.Popular(ctx, page)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	title := fmt.Sprintf("%s — page %d/%d", sectionTitle(section), result.Page, result.TotalPages)
	return r.writePlain("%s", formatter.MovieList(title, result.Results))
}

func sectionTitle(section string) string {
	switch section {
	case "now-playing":
		return "Now Playing"
	case "upcoming":
		return "Upcoming"
	case "top-rated":
		return "Top Rated"
	default:
		return "Popular"
	}
}
