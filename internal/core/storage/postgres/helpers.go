package postgres

import (
	"fmt"
	"time"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanFavouriteRow scans a database row into a Favourite.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanFavouriteRow(row scanner) (*v1.Favourite, error) {
	var (
		fav      v1.Favourite
		likeDate time.Time
	)

	if err := row.Scan(&fav.UserID, &fav.ProductID, &likeDate); err != nil {
		return nil, fmt.Errorf("failed to scan favourite row: %w", err)
	}

	// like_date is TIMESTAMP WITHOUT TIME ZONE; the driver hands it back in a
	// zero-offset location which NewLikeDate normalises to UTC.
	fav.LikeDate = v1.NewLikeDate(likeDate)
	return &fav, nil
}

// keyArgs returns the positional arguments shared by every key-addressed query.
func keyArgs(key v1.FavouriteKey) []interface{} {
	return []interface{}{key.UserID, key.ProductID, key.LikeDate.Time()}
}
