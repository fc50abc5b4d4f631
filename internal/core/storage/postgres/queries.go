package postgres

// SQL queries for favourite storage operations.
// The favourites table is keyed by (user_id, product_id, like_date).

const (
	// querySaveFavourite upserts a favourite. A favourite has no mutable columns
	// beyond its key, so a conflicting save only refreshes updated_at.
	querySaveFavourite = `
		INSERT INTO favourites (user_id, product_id, like_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id, like_date)
		DO UPDATE SET updated_at = NOW()
		RETURNING user_id, product_id, like_date
	`

	queryGetFavourite = `
		SELECT user_id, product_id, like_date
		FROM favourites
		WHERE user_id = $1
		  AND product_id = $2
		  AND like_date = $3
	`

	// queryListFavourites returns every favourite in key order so that list
	// responses are stable across calls.
	queryListFavourites = `
		SELECT user_id, product_id, like_date
		FROM favourites
		ORDER BY user_id ASC, product_id ASC, like_date ASC
	`

	// queryDeleteFavourite affects zero rows for an absent key; callers treat that as success.
	queryDeleteFavourite = `
		DELETE FROM favourites
		WHERE user_id = $1
		  AND product_id = $2
		  AND like_date = $3
	`

	queryFavouritesTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'favourites'
		)
	`
)
