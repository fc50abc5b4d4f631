package favourite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
	"github.com/aevon-lab/favourite-service/internal/core/storage"
	"github.com/aevon-lab/favourite-service/internal/remote"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrency = 8
	defaultMaxBodySizeMB  = 1
)

var (
	// ErrNotFound is the only failure that aborts a lookup: no favourite exists for the key.
	ErrNotFound = errors.New("not found")

	// ErrInvalidFavourite marks request validation errors that should return HTTP 400.
	ErrInvalidFavourite = errors.New("invalid favourite")
)

// Options tunes the service. Zero values select defaults.
type Options struct {
	// MaxConcurrency bounds how many favourites FindAll enriches at once.
	MaxConcurrency int
	// MaxBodySizeMB bounds POST/PUT request bodies.
	MaxBodySizeMB int
}

// Service reads favourites from the store and enriches them with user and
// product detail. A detail that cannot be fetched is left empty; only a
// missing favourite or a store failure is reported as an error.
type Service struct {
	store            storage.FavouriteStore
	users            remote.Source[v1.UserDetail]
	products         remote.Source[v1.ProductDetail]
	maxConcurrency   int
	maxBodySizeBytes int
}

func NewService(
	store storage.FavouriteStore,
	users remote.Source[v1.UserDetail],
	products remote.Source[v1.ProductDetail],
	opts Options,
) *Service {
	if store == nil {
		panic("favourite: store must not be nil")
	}
	if users == nil {
		panic("favourite: user source must not be nil")
	}
	if products == nil {
		panic("favourite: product source must not be nil")
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = defaultMaxConcurrency
	}
	if opts.MaxBodySizeMB <= 0 {
		opts.MaxBodySizeMB = defaultMaxBodySizeMB
	}
	return &Service{
		store:            store,
		users:            users,
		products:         products,
		maxConcurrency:   opts.MaxConcurrency,
		maxBodySizeBytes: opts.MaxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the favourite API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api/favourites")
	g.GET("", s.HandleFindAll)
	g.POST("", s.HandleSave)
	g.PUT("", s.HandleUpdate)
	g.GET("/:userId/:productId/:likeDate", s.HandleFindByID)
	g.DELETE("/:userId/:productId/:likeDate", s.HandleDeleteByID)
}

// FindAll returns every stored favourite, enriched, in store order.
func (s *Service) FindAll(ctx context.Context) ([]v1.FavouriteView, error) {
	favourites, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}

	views := make([]v1.FavouriteView, len(favourites))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, fav := range favourites {
		i, fav := i, fav
		g.Go(func() error {
			view, err := s.enrich(gctx, fav)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("[Favourite] Listed favourites", "count", len(views))
	return views, nil
}

// FindByID returns the favourite for key enriched with user and product
// detail. No remote source is called when the favourite does not exist.
func (s *Service) FindByID(ctx context.Context, key v1.FavouriteKey) (*v1.FavouriteView, error) {
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFavourite, err)
	}

	fav, err := s.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("favourite with id %s %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get favourite: %w", err)
	}

	view, err := s.enrich(ctx, fav)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Save persists the favourite part of view and returns it without detail.
func (s *Service) Save(ctx context.Context, view v1.FavouriteView) (*v1.FavouriteView, error) {
	saved, err := s.put(ctx, view)
	if err != nil {
		return nil, err
	}
	slog.Info("[Favourite] Saved favourite", "key", saved.Key().String())
	return bareView(saved), nil
}

// Update has the same upsert semantics as Save. A favourite has no mutable
// fields, so updating an existing key only refreshes its timestamps.
func (s *Service) Update(ctx context.Context, view v1.FavouriteView) (*v1.FavouriteView, error) {
	saved, err := s.put(ctx, view)
	if err != nil {
		return nil, err
	}
	slog.Info("[Favourite] Updated favourite", "key", saved.Key().String())
	return bareView(saved), nil
}

// DeleteByID removes the favourite for key. Deleting a missing key succeeds.
func (s *Service) DeleteByID(ctx context.Context, key v1.FavouriteKey) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidFavourite, err)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return false, fmt.Errorf("delete favourite: %w", err)
	}
	slog.Info("[Favourite] Deleted favourite", "key", key.String())
	return true, nil
}

func (s *Service) put(ctx context.Context, view v1.FavouriteView) (*v1.Favourite, error) {
	fav := view.Favourite()
	if err := fav.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFavourite, err)
	}
	saved, err := s.store.Save(ctx, fav)
	if err != nil {
		return nil, fmt.Errorf("save favourite: %w", err)
	}
	return saved, nil
}

func bareView(f *v1.Favourite) *v1.FavouriteView {
	view := v1.NewFavouriteView(f)
	return &view
}

// enrich fetches user and product detail concurrently. Each lookup is
// independent: an absent user never affects the product, and vice versa.
func (s *Service) enrich(ctx context.Context, fav *v1.Favourite) (v1.FavouriteView, error) {
	view := v1.NewFavouriteView(fav)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		view.User = fetch(ctx, s.users, fav.UserID).Ptr()
	}()
	go func() {
		defer wg.Done()
		view.Product = fetch(ctx, s.products, fav.ProductID).Ptr()
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return v1.FavouriteView{}, err
	}

	if view.User == nil || view.Product == nil {
		slog.Debug("[Favourite] Served partial view",
			"key", fav.Key().String(),
			"user_found", view.User != nil,
			"product_found", view.Product != nil)
	}
	return view, nil
}

// fetch races a lookup against ctx. On cancellation the lookup is abandoned
// and its late result, if any, lands in the buffered channel and is dropped.
// A panicking source degrades to Absent like any other lookup failure.
func fetch[T any](ctx context.Context, src remote.Source[T], id int) remote.Result[T] {
	done := make(chan remote.Result[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn("[Favourite] Remote source panicked", "id", id, "panic", r)
				done <- remote.Absent[T]()
			}
		}()
		done <- src.FetchByID(ctx, id)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return remote.Absent[T]()
	}
}
