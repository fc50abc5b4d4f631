package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
)

// ErrNotFound is returned when no favourite exists for a (user_id, product_id, like_date) key.
var ErrNotFound = errors.New("favourite not found")

// FavouriteStore defines the interface for storing and retrieving favourites.
// Implementations must be safe for concurrent use.
type FavouriteStore interface {
	// Get returns the favourite for key, or ErrNotFound.
	Get(ctx context.Context, key v1.FavouriteKey) (*v1.Favourite, error)

	// List returns every favourite ordered by (user_id, product_id, like_date).
	List(ctx context.Context) ([]*v1.Favourite, error)

	// Save upserts the favourite and returns its persisted form.
	Save(ctx context.Context, favourite *v1.Favourite) (*v1.Favourite, error)

	// Delete removes the favourite for key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key v1.FavouriteKey) error
}
