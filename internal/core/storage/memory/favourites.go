// Package memory provides an in-memory FavouriteStore, used by tests and by
// database.type=memory for local development.
package memory

import (
	"context"
	"sort"
	"sync"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
	"github.com/aevon-lab/favourite-service/internal/core/storage"
)

// FavouriteStore is an in-memory implementation of storage.FavouriteStore.
type FavouriteStore struct {
	mu         sync.RWMutex
	favourites map[string]v1.Favourite
}

// NewFavouriteStore creates an empty store, optionally seeded with favourites.
func NewFavouriteStore(seed ...*v1.Favourite) *FavouriteStore {
	s := &FavouriteStore{
		favourites: make(map[string]v1.Favourite),
	}
	for _, f := range seed {
		s.favourites[f.Key().String()] = *f
	}
	return s
}

func (s *FavouriteStore) Get(ctx context.Context, key v1.FavouriteKey) (*v1.Favourite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, exists := s.favourites[key.String()]
	if !exists {
		return nil, storage.ErrNotFound
	}

	// Return a copy to prevent external modification
	copy := f
	return &copy, nil
}

// List returns favourites ordered by (user_id, product_id, like_date), matching the postgres adapter.
func (s *FavouriteStore) List(ctx context.Context) ([]*v1.Favourite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*v1.Favourite, 0, len(s.favourites))
	for _, f := range s.favourites {
		copy := f
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.LikeDate.Before(b.LikeDate)
	})
	return result, nil
}

func (s *FavouriteStore) Save(ctx context.Context, favourite *v1.Favourite) (*v1.Favourite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := v1.Favourite{
		UserID:    favourite.UserID,
		ProductID: favourite.ProductID,
		LikeDate:  v1.NewLikeDate(favourite.LikeDate.Time()),
	}
	s.favourites[stored.Key().String()] = stored

	copy := stored
	return &copy, nil
}

func (s *FavouriteStore) Delete(ctx context.Context, key v1.FavouriteKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favourites, key.String())
	return nil
}

// Ping always succeeds; it lets the store stand in for a database in health checks.
func (s *FavouriteStore) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored favourites.
func (s *FavouriteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.favourites)
}
