// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
)

// MockCatalog is a test double for [catalog.Service].
//
// Movies maps ids to detail records; ids absent from the map fail with a
// catalog error. List endpoints return Pages in the order movies were added.
type MockCatalog struct {
	Movies   map[int64]models.Movie
	Listed   []models.Movie
	Searched []models.Movie
	Err      error
}

// NewMockCatalog creates an empty mock catalog.
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{Movies: map[int64]models.Movie{}}
}

// Add registers a movie for Details lookups and list responses.
func (m *MockCatalog) Add(movie models.Movie) {
	m.Movies[movie.ID] = movie
	m.Listed = append(m.Listed, movie)
}

func (m *MockCatalog) page(movies []models.Movie) (*models.Page, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.Page{Page: 1, Results: movies, TotalPages: 1, TotalResults: len(movies)}, nil
}

func (m *MockCatalog) Popular(ctx context.Context, page int) (*models.Page, error) {
	return m.page(m.Listed)
}

func (m *MockCatalog) NowPlaying(ctx context.Context, page int) (*models.Page, error) {
	return m.page(m.Listed)
}

func (m *MockCatalog) Upcoming(ctx context.Context, page int) (*models.Page, error) {
	return m.page(m.Listed)
}

func (m *MockCatalog) TopRated(ctx context.Context, page int) (*models.Page, error) {
	return m.page(m.Listed)
}

func (m *MockCatalog) Search(ctx context.Context, query string, page int) (*models.Page, error) {
	return m.page(m.Searched)
}

func (m *MockCatalog) Details(ctx context.Context, id int64) (*models.Movie, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	movie, ok := m.Movies[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", shared.ErrMovieNotFound, id)
	}
	return &movie, nil
}

func (m *MockCatalog) Image(path, size string) string {
	if path == "" {
		return "/placeholder.png"
	}
	return fmt.Sprintf("https://image.test/%s%s", size, path)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// FStore fails every read and write; exercises store error paths.
type FStore struct{}

func (f *FStore) Read(key string) ([]byte, error) {
	return nil, errors.New("read failed")
}

func (f *FStore) Write(key string, value []byte) error {
	return errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)
