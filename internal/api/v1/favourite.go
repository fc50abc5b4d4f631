package v1

import (
	"fmt"
	"math"
	"strconv"
)

// MaxID is the largest user or product id; both are stored as 32-bit INTEGER columns.
const MaxID = math.MaxInt32

// Favourite is the persisted fact that a user liked a product at a given instant.
// The three fields together form its identity; there is nothing else to update.
type Favourite struct {
	UserID    int      `json:"userId"`
	ProductID int      `json:"productId"`
	LikeDate  LikeDate `json:"likeDate"`
}

// Key returns the composite key addressing this favourite.
func (f *Favourite) Key() FavouriteKey {
	return FavouriteKey{UserID: f.UserID, ProductID: f.ProductID, LikeDate: f.LikeDate}
}

// Validate ensures every component of the composite key is present.
func (f *Favourite) Validate() error {
	return f.Key().Validate()
}

// FavouriteKey addresses at most one Favourite.
type FavouriteKey struct {
	UserID    int
	ProductID int
	LikeDate  LikeDate
}

// ParseFavouriteKey builds a key from its textual path segments,
// e.g. ("1", "101", "15-01-2023__10:30:00:000000").
func ParseFavouriteKey(userID, productID, likeDate string) (FavouriteKey, error) {
	uid, err := strconv.Atoi(userID)
	if err != nil {
		return FavouriteKey{}, fmt.Errorf("invalid userId %q: %w", userID, err)
	}
	pid, err := strconv.Atoi(productID)
	if err != nil {
		return FavouriteKey{}, fmt.Errorf("invalid productId %q: %w", productID, err)
	}
	ld, err := ParseLikeDate(likeDate)
	if err != nil {
		return FavouriteKey{}, err
	}

	key := FavouriteKey{UserID: uid, ProductID: pid, LikeDate: ld}
	if err := key.Validate(); err != nil {
		return FavouriteKey{}, err
	}
	return key, nil
}

// Validate ensures the key can address a stored favourite.
func (k FavouriteKey) Validate() error {
	if k.UserID <= 0 || k.UserID > MaxID {
		return fmt.Errorf("userId must be between 1 and %d", MaxID)
	}
	if k.ProductID <= 0 || k.ProductID > MaxID {
		return fmt.Errorf("productId must be between 1 and %d", MaxID)
	}
	if k.LikeDate.IsZero() {
		return fmt.Errorf("likeDate is required")
	}
	return nil
}

// Equal reports whether both keys address the same favourite.
func (k FavouriteKey) Equal(other FavouriteKey) bool {
	return k.UserID == other.UserID &&
		k.ProductID == other.ProductID &&
		k.LikeDate.Equal(other.LikeDate)
}

func (k FavouriteKey) String() string {
	return fmt.Sprintf("(userId=%d, productId=%d, likeDate=%s)", k.UserID, k.ProductID, k.LikeDate)
}

// UserDetail is the user-service representation of a user. Only the fields
// this service renders are decoded; the user service owns the full shape.
type UserDetail struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// FavouriteView is a Favourite enriched with whatever user and product detail
// could be fetched. User and Product are nil when their source was absent.
type FavouriteView struct {
	UserID    int            `json:"userId"`
	ProductID int            `json:"productId"`
	LikeDate  LikeDate       `json:"likeDate"`
	User      *UserDetail    `json:"user,omitempty"`
	Product   *ProductDetail `json:"product,omitempty"`
}

// NewFavouriteView wraps a stored favourite without any auxiliary detail.
func NewFavouriteView(f *Favourite) FavouriteView {
	return FavouriteView{
		UserID:    f.UserID,
		ProductID: f.ProductID,
		LikeDate:  f.LikeDate,
	}
}

// Favourite drops the auxiliary detail; it is never persisted.
func (v FavouriteView) Favourite() *Favourite {
	return &Favourite{
		UserID:    v.UserID,
		ProductID: v.ProductID,
		LikeDate:  v.LikeDate,
	}
}

// CollectionResponse is the list envelope returned by GET /api/favourites.
type CollectionResponse struct {
	Collection []FavouriteView `json:"collection"`
}
