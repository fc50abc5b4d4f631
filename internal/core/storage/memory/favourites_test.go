package memory

import (
	"context"
	"sync"
	"testing"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
	"github.com/aevon-lab/favourite-service/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func TestFavouriteStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewFavouriteStore()

	fav := &v1.Favourite{UserID: 1, ProductID: 101, LikeDate: v1.MustParseLikeDate("15-01-2023__10:30:00:000000")}

	_, err := store.Get(ctx, fav.Key())
	require.ErrorIs(t, err, storage.ErrNotFound)

	saved, err := store.Save(ctx, fav)
	require.NoError(t, err)
	require.True(t, saved.Key().Equal(fav.Key()))

	got, err := store.Get(ctx, fav.Key())
	require.NoError(t, err)
	require.True(t, got.Key().Equal(fav.Key()))

	// Mutating the returned copy must not leak into the store.
	got.ProductID = 999
	again, err := store.Get(ctx, fav.Key())
	require.NoError(t, err)
	require.Equal(t, 101, again.ProductID)

	// Re-saving the same key overwrites rather than duplicates.
	_, err = store.Save(ctx, fav)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, fav.Key()))
	_, err = store.Get(ctx, fav.Key())
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, fav.Key()))
}

func TestFavouriteStore_ListOrder(t *testing.T) {
	store := NewFavouriteStore(
		&v1.Favourite{UserID: 2, ProductID: 102, LikeDate: v1.MustParseLikeDate("20-02-2023__14:45:00:000000")},
		&v1.Favourite{UserID: 1, ProductID: 101, LikeDate: v1.MustParseLikeDate("16-01-2023__10:30:00:000000")},
		&v1.Favourite{UserID: 1, ProductID: 101, LikeDate: v1.MustParseLikeDate("15-01-2023__10:30:00:000000")},
		&v1.Favourite{UserID: 1, ProductID: 100, LikeDate: v1.MustParseLikeDate("01-03-2023__00:00:00:000000")},
	)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)

	got := make([]string, 0, len(list))
	for _, f := range list {
		got = append(got, f.Key().String())
	}
	require.Equal(t, []string{
		"(userId=1, productId=100, likeDate=01-03-2023__00:00:00:000000)",
		"(userId=1, productId=101, likeDate=15-01-2023__10:30:00:000000)",
		"(userId=1, productId=101, likeDate=16-01-2023__10:30:00:000000)",
		"(userId=2, productId=102, likeDate=20-02-2023__14:45:00:000000)",
	}, got)
}

func TestFavouriteStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewFavouriteStore()
	likeDate := v1.MustParseLikeDate("15-01-2023__10:30:00:000000")

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			fav := &v1.Favourite{UserID: id, ProductID: id + 100, LikeDate: likeDate}
			_, err := store.Save(ctx, fav)
			require.NoError(t, err)
			_, err = store.Get(ctx, fav.Key())
			require.NoError(t, err)
			_, err = store.List(ctx)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 50, store.Len())
}
