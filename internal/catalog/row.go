package catalog

import (
	"encoding/json"
	"fmt"
)

// BookRow is the joined shape read by the repository: a book plus the
// relations resolved through publishers, categories, book_series,
// book_authors, book_categories and reviews. Relation names are nil when
// the join did not resolve.
type BookRow struct {
	Book
	PublisherName       *string
	PrimaryCategoryName *string
	SeriesName          *string
	Authors             []AuthorLink
	Categories          []CategoryLink
	Reviews             []Review
}

// AuthorLink is one book_authors row with its author resolved.
type AuthorLink struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

// CategoryLink is one book_categories row with its category resolved.
type CategoryLink struct {
	Name *string `json:"name"`
}

// decodeRelations fills the aggregated JSON columns of a joined row. A nil
// or empty payload leaves the slice empty.
func (r *BookRow) decodeRelations(authors, categories, reviews []byte) error {
	if err := decodeJSONArray(authors, &r.Authors); err != nil {
		return fmt.Errorf("decode book_authors: %w", err)
	}
	if err := decodeJSONArray(categories, &r.Categories); err != nil {
		return fmt.Errorf("decode book_categories: %w", err)
	}
	if err := decodeJSONArray(reviews, &r.Reviews); err != nil {
		return fmt.Errorf("decode reviews: %w", err)
	}
	return nil
}

func decodeJSONArray[T any](raw []byte, dst *[]T) error {
	if len(raw) == 0 || string(raw) == "null" {
		*dst = nil
		return nil
	}
	return json.Unmarshal(raw, dst)
}
