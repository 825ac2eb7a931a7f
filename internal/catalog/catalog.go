package catalog

import (
	"context"

	"github.com/desertthunder/reel/internal/models"
)

// Service defines the interface for the remote movie catalog.
type Service interface {
	// Popular retrieves the popular movie list for the given page.
	Popular(ctx context.Context, page int) (*models.Page, error)

	// NowPlaying retrieves movies currently in theatres for the given page.
	NowPlaying(ctx context.Context, page int) (*models.Page, error)

	// Upcoming retrieves upcoming releases for the given page.
	Upcoming(ctx context.Context, page int) (*models.Page, error)

	// TopRated retrieves the top rated movie list for the given page.
	TopRated(ctx context.Context, page int) (*models.Page, error)

	// Search retrieves movies matching a free-text query.
	// An empty query is the caller's responsibility to avoid.
	Search(ctx context.Context, query string, page int) (*models.Page, error)

	// Details retrieves one movie enriched with credits and videos.
	Details(ctx context.Context, id int64) (*models.Movie, error)

	// Image builds the asset URL for a poster/backdrop/profile path at the
	// named size bucket, or a local placeholder when the path is empty.
	Image(path, size string) string
}
