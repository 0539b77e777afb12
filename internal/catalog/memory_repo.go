package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

var _ Repository = (*MemoryRepo)(nil)

// MemoryRepo keeps the catalog in process memory. It serves the API when the
// database is disabled and loses every write on restart.
type MemoryRepo struct {
	mu         sync.RWMutex
	rows       []BookRow
	publishers []Publisher
	nextID     int64
	now        func() time.Time
}

// NewMemoryRepo returns a repository holding a small demo catalog.
func NewMemoryRepo() *MemoryRepo {
	r := &MemoryRepo{now: time.Now}
	r.seed()
	return r
}

func (r *MemoryRepo) seed() {
	demo := []struct {
		title, author, publisher, description, isbn, published, genre string
		price                                                          float64
	}{
		{"The Great Gatsby", "F. Scott Fitzgerald", "Charles Scribner's Sons",
			"A classic American novel set in the summer of 1922.", "978-0-7432-7356-5", "1925-04-10",
			"Classic Literature", 15.99},
		{"To Kill a Mockingbird", "Harper Lee", "J.B. Lippincott & Co.",
			"A gripping tale of coming-of-age in the American South.", "978-0-06-112008-4", "1960-07-11",
			"Classic Literature", 18.50},
		{"1984", "George Orwell", "Secker & Warburg",
			"A dystopian social science fiction novel.", "978-0-452-28423-4", "1949-06-08",
			"Science Fiction", 16.75},
	}

	start := r.now().Add(-time.Duration(len(demo)) * time.Minute)
	for i, d := range demo {
		at := start.Add(time.Duration(i) * time.Minute)
		r.nextID++
		id := r.nextID

		r.publishers = append(r.publishers, Publisher{
			ID:             id,
			Name:           d.publisher,
			Specialties:    []string{},
			Awards:         []string{},
			NotableAuthors: []string{d.author},
			IsActive:       true,
			CreatedAt:      at,
			UpdatedAt:      at,
		})
		r.rows = append(r.rows, BookRow{
			Book: Book{
				ID:            id,
				Title:         d.title,
				Description:   lo.ToPtr(d.description),
				ISBN:          lo.ToPtr(d.isbn),
				Price:         d.price,
				Stock:         10,
				PublishedDate: lo.ToPtr(d.published),
				PublisherID:   lo.ToPtr(id),
				IsAvailable:   true,
				CreatedAt:     at,
				UpdatedAt:     at,
			},
			PublisherName:       lo.ToPtr(d.publisher),
			PrimaryCategoryName: lo.ToPtr(d.genre),
			Authors:             []AuthorLink{{FullName: lo.ToPtr(d.author), Role: lo.ToPtr(defaultAuthorRole)}},
			Categories:          []CategoryLink{{Name: lo.ToPtr(d.genre)}},
		})
	}
}

func (r *MemoryRepo) CreateBook(_ context.Context, in CreateBookInput) (BookView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.nextID++
	book := Book{
		ID:            r.nextID,
		Title:         in.Title,
		Description:   copyPtr(in.Description),
		ISBN:          lo.ToPtr(in.ISBN),
		Price:         lo.FromPtr(in.Price),
		Stock:         lo.FromPtr(in.Stock),
		PublishedDate: copyPtr(in.PublishedDate),
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.rows = append(r.rows, BookRow{Book: book})
	return ToBookView(BookRow{Book: book}), nil
}

func (r *MemoryRepo) FindAllBooks(_ context.Context) []BookView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listViews(func(BookRow) bool { return true })
}

func (r *MemoryRepo) FindBookByID(_ context.Context, id int64) (BookView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return BookView{}, fmt.Errorf("book with ID %d: %w", id, ErrNotFound)
	}
	return ToBookView(r.rows[i]), nil
}

func (r *MemoryRepo) UpdateBook(ctx context.Context, id int64, in UpdateBookInput) (BookView, error) {
	if in.IsEmpty() {
		return r.FindBookByID(ctx, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return BookView{}, fmt.Errorf("book with ID %d not found or update failed: %w", id, ErrNotFound)
	}

	b := &r.rows[i].Book
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Description != nil {
		b.Description = copyPtr(in.Description)
	}
	if in.ISBN != nil {
		b.ISBN = copyPtr(in.ISBN)
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
	if in.Stock != nil {
		b.Stock = *in.Stock
	}
	if in.PublishedDate != nil {
		b.PublishedDate = copyPtr(in.PublishedDate)
	}
	b.UpdatedAt = r.now()
	return ToBookView(r.rows[i]), nil
}

func (r *MemoryRepo) DeleteBook(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = slices.DeleteFunc(r.rows, func(row BookRow) bool { return row.ID == id })
	return nil
}

func (r *MemoryRepo) FindBooksByGenre(_ context.Context, text string) ([]BookView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(text)
	return r.listViews(func(row BookRow) bool {
		return strings.Contains(strings.ToLower(row.Title), needle) ||
			strings.Contains(strings.ToLower(deref(row.Description)), needle)
	}), nil
}

func (r *MemoryRepo) CountBooks(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rows), nil
}

func (r *MemoryRepo) ListPublisherNames(_ context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Uniq(lo.FilterMap(r.rows, func(row BookRow, _ int) (string, bool) {
		name := deref(row.PublisherName)
		return name, strings.TrimSpace(name) != ""
	}))
	slices.Sort(names)
	return names
}

func (r *MemoryRepo) ListPublishersWithDetails(_ context.Context) []Publisher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := lo.Filter(r.publishers, func(p Publisher, _ int) bool { return p.IsActive })
	slices.SortFunc(out, func(a, b Publisher) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func (r *MemoryRepo) GetPublisherByName(_ context.Context, name string) *Publisher {
	return r.findPublisher(func(p Publisher) bool { return p.Name == name })
}

func (r *MemoryRepo) GetPublisherByID(_ context.Context, id int64) *Publisher {
	return r.findPublisher(func(p Publisher) bool { return p.ID == id })
}

// ListBranches always returns an empty list: the demo catalog has no branches.
func (r *MemoryRepo) ListBranches(_ context.Context, _ int64) ([]Branch, error) {
	return []Branch{}, nil
}

func (r *MemoryRepo) findPublisher(match func(Publisher) bool) *Publisher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := lo.Find(r.publishers, match)
	if !ok {
		return nil
	}
	return &p
}

func (r *MemoryRepo) indexOf(id int64) int {
	return slices.IndexFunc(r.rows, func(row BookRow) bool { return row.ID == id })
}

// listViews returns matching books newest first, without reviews, like the
// joined listing query.
func (r *MemoryRepo) listViews(match func(BookRow) bool) []BookView {
	rows := lo.Filter(r.rows, func(row BookRow, _ int) bool { return match(row) })
	slices.SortStableFunc(rows, func(a, b BookRow) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return lo.Map(rows, func(row BookRow, _ int) BookView {
		row.Reviews = nil
		return ToBookView(row)
	})
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
