// package favorites owns the favorite movie id set and its resolution
// against the remote catalog.
//
// The set is profile-scoped, not user-scoped: switching signed-in accounts
// on one profile does not partition favorites. That matches the original
// application's behavior and is a deliberate, tested choice.
package favorites

import (
	"context"
	"sync"

	"github.com/desertthunder/reel/internal/catalog"
	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/store"
)

// Service manages the favorites record over a profile store.
type Service struct {
	store   store.Store
	catalog catalog.Service
	mu      sync.Mutex
}

// NewService creates a new [Service] backed by the given store and catalog client.
func NewService(s store.Store, c catalog.Service) *Service {
	return &Service{store: s, catalog: c}
}

// List returns the favorite movie ids in insertion order, empty if none.
func (s *Service) List() []int64 {
	return store.ReadJSON(s.store, store.KeyFavorites, []int64{})
}

// Toggle adds the id when absent and removes it when present, persists the
// result, and returns the new sequence.
func (s *Service) Toggle(id int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.List()
	next := make([]int64, 0, len(ids)+1)
	found := false
	for _, fav := range ids {
		if fav == id {
			found = true
			continue
		}
		next = append(next, fav)
	}
	if !found {
		next = append(next, id)
	}

	if err := store.WriteJSON(s.store, store.KeyFavorites, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Remove unconditionally removes the id and returns the new sequence.
// Removing an absent id is a no-op, not an error.
func (s *Service) Remove(id int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.List()
	next := make([]int64, 0, len(ids))
	for _, fav := range ids {
		if fav != id {
			next = append(next, fav)
		}
	}

	if err := store.WriteJSON(s.store, store.KeyFavorites, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Contains reports whether the id is currently a favorite.
func (s *Service) Contains(id int64) bool {
	for _, fav := range s.List() {
		if fav == id {
			return true
		}
	}
	return false
}

// Resolve fetches the full movie record for each id concurrently.
//
// The result slice is index-aligned with ids; a per-id fetch failure yields
// a nil entry instead of failing the batch, and the batch returns only after
// every fetch has settled. Callers filter nil entries before display.
func (s *Service) Resolve(ctx context.Context, ids []int64) []*models.Movie {
	movies := make([]*models.Movie, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			movie, err := s.catalog.Details(ctx, id)
			if err != nil {
				return
			}
			movies[i] = movie
		}(i, id)
	}
	wg.Wait()

	return movies
}

// ResolvePresent resolves ids and drops entries whose fetch failed.
func (s *Service) ResolvePresent(ctx context.Context, ids []int64) []models.Movie {
	resolved := s.Resolve(ctx, ids)
	movies := make([]models.Movie, 0, len(resolved))
	for _, m := range resolved {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies
}
