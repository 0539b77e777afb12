// Package loader seeds the catalog with publishers, authors, categories and
// books. Runs are idempotent: a book already present under the same
// (title, isbn) pair is skipped.
package loader

// SeedBook is one input record. Author and Genre are single names; a seeded
// book gets at most one author link and one category, which also becomes its
// primary category.
type SeedBook struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author"`
	Publisher     string  `json:"publisher"`
	Description   string  `json:"description"`
	ISBN          string  `json:"isbn" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Genre         string  `json:"genre"`
	PublishedDate string  `json:"published_date" validate:"omitempty,datetime=2006-01-02"`
}

// Stage is the furthest step a book reached during a run.
type Stage string

const (
	StagePublisherResolved Stage = "publisher_resolved"
	StageInserted          Stage = "inserted"
	StageAuthorLinked      Stage = "author_linked"
	StageCategoryLinked    Stage = "category_linked"
	StageDone              Stage = "done"
)

type Outcome string

const (
	OutcomeInserted    Outcome = "inserted"
	OutcomeDuplicate   Outcome = "skipped_duplicate"
	OutcomeNoPublisher Outcome = "skipped_no_publisher"
	OutcomeFailed      Outcome = "failed"
)

// BookOutcome describes what happened to one SeedBook. For a failed book,
// Stage is the last step that succeeded before the transaction rolled back.
type BookOutcome struct {
	Title   string  `json:"title"`
	ISBN    string  `json:"isbn"`
	Outcome Outcome `json:"outcome"`
	Stage   Stage   `json:"stage,omitempty"`
	BookID  int64   `json:"book_id,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type Report struct {
	PublishersCreated       int           `json:"publishers_created"`
	PublishersExisting      int           `json:"publishers_existing"`
	PublishersFailed        int           `json:"publishers_failed"`
	BooksInserted           int           `json:"books_inserted"`
	BooksSkippedDuplicate   int           `json:"books_skipped_duplicate"`
	BooksSkippedNoPublisher int           `json:"books_skipped_no_publisher"`
	BooksFailed             int           `json:"books_failed"`
	Books                   []BookOutcome `json:"books"`
}

func (r *Report) add(o BookOutcome) {
	switch o.Outcome {
	case OutcomeInserted:
		r.BooksInserted++
	case OutcomeDuplicate:
		r.BooksSkippedDuplicate++
	case OutcomeNoPublisher:
		r.BooksSkippedNoPublisher++
	case OutcomeFailed:
		r.BooksFailed++
	}
	r.Books = append(r.Books, o)
}

// NewBook is the row inserted for a seeded book.
type NewBook struct {
	Title         string
	Description   string
	ISBN          string
	Price         float64
	Stock         int
	PublishedDate string
	PublisherID   int64
}
