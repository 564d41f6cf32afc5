package pagination

// Cut takes rows ordered newest first, fetched with limit+1, and returns the page in
// chronological order plus the next cursor. The cursor is the oldest fetched row; the
// following page starts at it inclusively.
func Cut[T any](rows []T, limit int) ([]T, *T) {
	var cursor *T

	if limit >= 0 && len(rows) > limit {
		last := rows[len(rows)-1]
		cursor = &last
		rows = rows[:len(rows)-1]
	}

	items := make([]T, len(rows))
	for i, row := range rows {
		items[len(rows)-1-i] = row
	}

	return items, cursor
}

// Fetch is the row count to ask the store for.
func Fetch(limit int) uint64 {
	if limit < 0 {
		limit = 0
	}

	return uint64(limit) + 1
}

// Clamp falls back to def for non-positive limits and caps at max when max is set.
func Clamp(limit, def, max int) int {
	if limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}

	return limit
}
