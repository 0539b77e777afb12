package catalog

import (
	"time"
)

// Book is one row of the books table. Nullable columns are pointers.
type Book struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Subtitle          *string   `json:"subtitle,omitempty"`
	Description       *string   `json:"description,omitempty"`
	ISBN              *string   `json:"isbn,omitempty"`
	ISBN13            *string   `json:"isbn13,omitempty"`
	Price             float64   `json:"price"`
	OriginalPrice     *float64  `json:"original_price,omitempty"`
	Stock             int       `json:"stock"`
	Language          *string   `json:"language,omitempty"`
	PageCount         *int      `json:"page_count,omitempty"`
	Format            *string   `json:"format,omitempty"`
	PublishedDate     *string   `json:"published_date,omitempty"` // YYYY-MM-DD as stored
	PublisherID       *int64    `json:"publisher_id,omitempty"`
	PrimaryCategoryID *int64    `json:"primary_category_id,omitempty"`
	SeriesID          *int64    `json:"series_id,omitempty"`
	SeriesNumber      *int      `json:"series_number,omitempty"`
	CoverImageURL     *string   `json:"cover_image_url,omitempty"`
	IsBestseller      bool      `json:"is_bestseller"`
	IsFeatured        bool      `json:"is_featured"`
	IsAvailable       bool      `json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Review struct {
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment"`
	ReviewerName string  `json:"reviewer_name"`
	Title        *string `json:"title,omitempty"`
	HelpfulCount *int    `json:"helpful_count,omitempty"`
}

// CreateBookInput carries the fields accepted when a book is created.
type CreateBookInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   *string  `json:"description,omitempty"`
	ISBN          string   `json:"isbn" validate:"required"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	Stock         *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	PublishedDate *string  `json:"published_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateBookInput is a partial update. Nil fields are left untouched.
type UpdateBookInput struct {
	Title         *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Description   *string  `json:"description,omitempty"`
	ISBN          *string  `json:"isbn,omitempty" validate:"omitempty,min=1"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock         *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	PublishedDate *string  `json:"published_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// IsEmpty reports whether the update carries no fields.
func (in UpdateBookInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.ISBN == nil &&
		in.Price == nil && in.Stock == nil && in.PublishedDate == nil
}
