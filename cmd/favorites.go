package main

import (
	"context"

	"github.com/desertthunder/reel/internal/formatter"
	"github.com/urfave/cli/v3"
)

// FavoritesList resolves the favorites set against the catalog and prints it.
//
// Ids whose fetch failed are reported as unavailable rather than dropped
// silently, so the count always matches the stored set.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	favoritesService, err := r.favoritesService()
	if err != nil {
		return err
	}

	ids := favoritesService.List()
	if len(ids) == 0 {
		return r.writePlain("No favorites yet. Use 'reel favorites toggle <id>' to add one.\n")
	}

	r.logger.Infof("resolving %v favorites", len(ids))

	movies := favoritesService.Resolve(ctx, ids)

	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	r.writePlain("Favorites (%d movies):\n\n", len(ids))
	for i, movie := range movies {
		if movie == nil {
			r.writePlain("%d. (unavailable) ID: %d\n", i+1, ids[i])
			continue
		}
		r.writePlain("%s\n", formatter.MovieLine(i+1, *movie))
		r.writePlain("   ID: %d\n", movie.ID)
	}

	return nil
}

// FavoritesToggle adds or removes one movie from favorites.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	favoritesService, err := r.favoritesService()
	if err != nil {
		return err
	}

	id, err := movieID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	ids, err := favoritesService.Toggle(id)
	if err != nil {
		return err
	}

	if favoritesService.Contains(id) {
		r.writePlain("✓ Added %d to favorites (%d total)\n", id, len(ids))
	} else {
		r.writePlain("Removed %d from favorites (%d total)\n", id, len(ids))
	}
	return nil
}

// FavoritesRemove removes one movie from favorites; absent ids are a no-op.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	favoritesService, err := r.favoritesService()
	if err != nil {
		return err
	}

	id, err := movieID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	ids, err := favoritesService.Remove(id)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Removed %d from favorites (%d total)\n", id, len(ids))
}

// FavoritesExport writes resolved favorites to a file in the requested format.
func (r *Runner) FavoritesExport(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireSession(); err != nil {
		return err
	}

	favoritesService, err := r.favoritesService()
	if err != nil {
		return err
	}

	ids := favoritesService.List()
	if len(ids) == 0 {
		return r.writePlain("No favorites to export\n")
	}

	r.logger.Infof("exporting %v favorites as %v", len(ids), cmd.String("format"))

	movies := favoritesService.ResolvePresent(ctx, ids)

	path, err := formatter.WriteFavoritesExport(movies, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return err
	}

	r.writePlain("✓ Exported %d favorites to %s\n", len(movies), path)
	if skipped := len(ids) - len(movies); skipped > 0 {
		r.writePlain("  %d favorites could not be resolved and were skipped\n", skipped)
	}
	return nil
}
