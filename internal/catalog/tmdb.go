package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultImageURL = "https://image.tmdb.org/t/p"

	// PlaceholderImage is returned when a movie has no poster/backdrop path.
	PlaceholderImage = "/placeholder.png"
)

// TMDBService implements the [Service] interface for TMDB API interactions.
//
// Response types based on https://developer.themoviedb.org/reference/intro/getting-started
type TMDBService struct {
	apiKey     string
	baseURL    string
	imageURL   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// TMDBOpts contains configuration options for creating a TMDBService.
type TMDBOpts struct {
	APIKey     string
	BaseURL    string
	ImageURL   string
	RateLimit  float64 // Requests per second (default: 5)
	HTTPClient *http.Client
}

// NewTMDBService creates a new TMDB catalog client with the given options.
func NewTMDBService(opts TMDBOpts) (*TMDBService, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("%w: missing TMDB api_key", shared.ErrInvalidConfig)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.ImageURL == "" {
		opts.ImageURL = defaultImageURL
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &TMDBService{
		apiKey:     opts.APIKey,
		baseURL:    opts.BaseURL,
		imageURL:   opts.ImageURL,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}, nil
}

// doRequest performs a rate-limited GET request against the TMDB API.
//
// Every request carries the api_key and language parameters. Transport and
// non-2xx failures are wrapped in [shared.ErrCatalog].
func (s *TMDBService) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrCatalog, err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)
	params.Set("language", "en-US")

	apiURL := s.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrCatalog, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: status %d", shared.ErrMovieNotFound, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrCatalog, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrCatalog, err)
		}
	}

	return nil
}

// list fetches one page of a movie list endpoint.
func (s *TMDBService) list(ctx context.Context, endpoint string, page int) (*models.Page, error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))

	var result models.Page
	if err := s.doRequest(ctx, endpoint, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Popular retrieves the popular movie list for the given page.
func (s *TMDBService) Popular(ctx context.Context, page int) (*models.Page, error) {
	return s.list(ctx, "/movie/popular", page)
}

// NowPlaying retrieves movies currently in theatres for the given page.
func (s *TMDBService) NowPlaying(ctx context.Context, page int) (*models.Page, error) {
	return s.list(ctx, "/movie/now_playing", page)
}

// Upcoming retrieves upcoming releases for the given page.
func (s *TMDBService) Upcoming(ctx context.Context, page int) (*models.Page, error) {
	return s.list(ctx, "/movie/upcoming", page)
}

// TopRated retrieves the top rated movie list for the given page.
func (s *TMDBService) TopRated(ctx context.Context, page int) (*models.Page, error) {
	return s.list(ctx, "/movie/top_rated", page)
}

// Search retrieves movies matching a free-text query.
func (s *TMDBService) Search(ctx context.Context, query string, page int) (*models.Page, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", shared.ErrMissingArgument)
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", fmt.Sprintf("%d", page))

	var result models.Page
	if err := s.doRequest(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Details retrieves one movie with credits and videos appended in a single round trip.
func (s *TMDBService) Details(ctx context.Context, id int64) (*models.Movie, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")

	var movie models.Movie
	endpoint := fmt.Sprintf("/movie/%d", id)
	if err := s.doRequest(ctx, endpoint, params, &movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

// Image builds the asset URL for path at the named size bucket.
//
// A movie without a poster has an empty path; the placeholder is returned
// instead of constructing a URL from it.
func (s *TMDBService) Image(path, size string) string {
	if path == "" {
		return PlaceholderImage
	}
	if size == "" {
		size = "w342"
	}
	return fmt.Sprintf("%s/%s%s", s.imageURL, size, path)
}

// TrailerURL returns the watch URL for a movie's first YouTube trailer.
func TrailerURL(movie *models.Movie) (string, error) {
	trailer := movie.Trailer()
	if trailer == nil {
		return "", fmt.Errorf("%w: %s", shared.ErrNoTrailer, movie.Title)
	}
	return "https://www.youtube.com/watch?v=" + trailer.Key, nil
}
