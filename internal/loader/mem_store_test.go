package loader

import (
	"context"
	"errors"
	"slices"
	"sync"

	"bookcatalog/internal/catalog"
)

var errInjected = errors.New("injected store failure")

type memEntity struct {
	id   int64
	name string
}

type memBook struct {
	NewBook
	id                int64
	primaryCategoryID int64
}

type memLink struct {
	bookID, otherID int64
	role            string
}

type memState struct {
	nextID         int64
	publishers     []memEntity
	books          []memBook
	authors        []memEntity
	categories     []memEntity
	bookAuthors    []memLink
	bookCategories []memLink
}

func (s memState) clone() memState {
	return memState{
		nextID:         s.nextID,
		publishers:     slices.Clone(s.publishers),
		books:          slices.Clone(s.books),
		authors:        slices.Clone(s.authors),
		categories:     slices.Clone(s.categories),
		bookAuthors:    slices.Clone(s.bookAuthors),
		bookCategories: slices.Clone(s.bookCategories),
	}
}

// memStore is an in-memory Store. failOn makes the named method fail for
// the book with the given title.
type memStore struct {
	mu    sync.Mutex
	state memState

	failOn      map[string]string
	currentBook string

	lookupBarrier *sync.WaitGroup
	lookups       int
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{failOn: map[string]string{}}
}

func (m *memStore) id() int64 {
	m.state.nextID++
	return m.state.nextID
}

func (m *memStore) shouldFail(method string) bool {
	title, ok := m.failOn[method]
	return ok && title == m.currentBook
}

func findByName(rows []memEntity, name string) (int64, bool) {
	for _, r := range rows {
		if r.name == name {
			return r.id, true
		}
	}
	return 0, false
}

func (m *memStore) FindPublisherByName(_ context.Context, name string) (int64, bool, error) {
	m.mu.Lock()
	id, found := findByName(m.state.publishers, name)
	m.lookups++
	wait := m.lookupBarrier != nil && m.lookups <= 2
	m.mu.Unlock()

	if wait {
		m.lookupBarrier.Done()
		m.lookupBarrier.Wait()
	}
	return id, found, nil
}

func (m *memStore) CreatePublisher(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.id()
	m.state.publishers = append(m.state.publishers, memEntity{id: id, name: name})
	return id, nil
}

func (m *memStore) BookExists(_ context.Context, title, isbn string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.currentBook = title
	return slices.ContainsFunc(m.state.books, func(b memBook) bool {
		return b.Title == title && b.ISBN == isbn
	}), nil
}

func (m *memStore) InsertBook(_ context.Context, b NewBook) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail("InsertBook") {
		return 0, errInjected
	}
	id := m.id()
	m.state.books = append(m.state.books, memBook{NewBook: b, id: id})
	return id, nil
}

func (m *memStore) FindOrCreateAuthor(_ context.Context, fullName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail("FindOrCreateAuthor") {
		return 0, errInjected
	}
	if id, ok := findByName(m.state.authors, fullName); ok {
		return id, nil
	}
	id := m.id()
	m.state.authors = append(m.state.authors, memEntity{id: id, name: fullName})
	return id, nil
}

func (m *memStore) LinkAuthor(_ context.Context, bookID, authorID int64, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.bookAuthors = append(m.state.bookAuthors, memLink{bookID: bookID, otherID: authorID, role: role})
	return nil
}

func (m *memStore) FindOrCreateCategory(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := findByName(m.state.categories, name); ok {
		return id, nil
	}
	id := m.id()
	m.state.categories = append(m.state.categories, memEntity{id: id, name: name})
	return id, nil
}

func (m *memStore) LinkCategory(_ context.Context, bookID, categoryID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail("LinkCategory") {
		return errInjected
	}
	m.state.bookCategories = append(m.state.bookCategories, memLink{bookID: bookID, otherID: categoryID})
	return nil
}

func (m *memStore) SetPrimaryCategory(_ context.Context, bookID, categoryID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.state.books {
		if m.state.books[i].id == bookID {
			m.state.books[i].primaryCategoryID = categoryID
		}
	}
	return nil
}

func nameOf(rows []memEntity, id int64) *string {
	for _, r := range rows {
		if r.id == id {
			name := r.name
			return &name
		}
	}
	return nil
}

// views joins the stored books the way the catalog repository does and
// flattens them with catalog.ToBookView.
func (m *memStore) views() []catalog.BookView {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]catalog.BookView, 0, len(m.state.books))
	for _, b := range m.state.books {
		isbn := b.ISBN
		row := catalog.BookRow{
			Book: catalog.Book{
				ID:    b.id,
				Title: b.Title,
				ISBN:  &isbn,
				Price: b.Price,
				Stock: b.Stock,
			},
			PublisherName:       nameOf(m.state.publishers, b.PublisherID),
			PrimaryCategoryName: nameOf(m.state.categories, b.primaryCategoryID),
		}
		for _, l := range m.state.bookAuthors {
			if l.bookID == b.id {
				role := l.role
				row.Authors = append(row.Authors, catalog.AuthorLink{FullName: nameOf(m.state.authors, l.otherID), Role: &role})
			}
		}
		for _, l := range m.state.bookCategories {
			if l.bookID == b.id {
				row.Categories = append(row.Categories, catalog.CategoryLink{Name: nameOf(m.state.categories, l.otherID)})
			}
		}
		out = append(out, catalog.ToBookView(row))
	}
	return out
}

// snapshotTx restores the store state when fn fails. It serializes
// transactions and must not be shared by concurrent runs.
type snapshotTx struct {
	store *memStore
}

func (t snapshotTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	saved := t.store.state.clone()
	t.store.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.store.mu.Lock()
		t.store.state = saved
		t.store.mu.Unlock()
		return err
	}
	return nil
}

// passthroughTx runs fn without a transaction.
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
