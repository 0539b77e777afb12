package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookcatalog/internal/platform/postgres"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore resolves its querier through postgres.Conn so every call
// joins the transaction opened by the loader for the current book.
type PostgresStore struct {
	db postgres.DB
}

func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindPublisherByName(ctx context.Context, name string) (int64, bool, error) {
	const sql = `
		SELECT id FROM publishers
		WHERE name = $1
		ORDER BY id
		LIMIT 1`

	id, err := s.findID(ctx, sql, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find publisher %q: %w", name, err)
	}
	return id, true, nil
}

func (s *PostgresStore) CreatePublisher(ctx context.Context, name string) (int64, error) {
	const sql = `
		INSERT INTO publishers (name, is_active)
		VALUES ($1, true)
		RETURNING id`

	id, err := s.findID(ctx, sql, name)
	if err != nil {
		return 0, fmt.Errorf("create publisher %q: %w", name, err)
	}
	return id, nil
}

func (s *PostgresStore) BookExists(ctx context.Context, title, isbn string) (bool, error) {
	const sql = `
		SELECT EXISTS (
			SELECT 1 FROM books WHERE title = $1 AND isbn = $2
		)`

	var exists bool
	if err := postgres.Conn(ctx, s.db).QueryRow(ctx, sql, title, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("check book %q: %w", title, err)
	}
	return exists, nil
}

func (s *PostgresStore) InsertBook(ctx context.Context, b NewBook) (int64, error) {
	const sql = `
		INSERT INTO books (title, description, isbn, price, stock, published_date, publisher_id, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		RETURNING id`

	id, err := s.findID(ctx, sql,
		b.Title, nullIfEmpty(b.Description), b.ISBN, b.Price, b.Stock, nullIfEmpty(b.PublishedDate), b.PublisherID)
	if err != nil {
		return 0, fmt.Errorf("insert book %q: %w", b.Title, err)
	}
	return id, nil
}

func (s *PostgresStore) FindOrCreateAuthor(ctx context.Context, fullName string) (int64, error) {
	id, err := s.findOrCreate(ctx,
		`SELECT id FROM authors WHERE full_name = $1 ORDER BY id LIMIT 1`,
		`INSERT INTO authors (full_name) VALUES ($1) RETURNING id`,
		fullName)
	if err != nil {
		return 0, fmt.Errorf("author %q: %w", fullName, err)
	}
	return id, nil
}

func (s *PostgresStore) LinkAuthor(ctx context.Context, bookID, authorID int64, role string) error {
	const sql = `
		INSERT INTO book_authors (book_id, author_id, role)
		VALUES ($1, $2, $3)`

	if _, err := postgres.Conn(ctx, s.db).Exec(ctx, sql, bookID, authorID, role); err != nil {
		return fmt.Errorf("link author %d to book %d: %w", authorID, bookID, err)
	}
	return nil
}

func (s *PostgresStore) FindOrCreateCategory(ctx context.Context, name string) (int64, error) {
	id, err := s.findOrCreate(ctx,
		`SELECT id FROM categories WHERE name = $1 ORDER BY id LIMIT 1`,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		name)
	if err != nil {
		return 0, fmt.Errorf("category %q: %w", name, err)
	}
	return id, nil
}

func (s *PostgresStore) LinkCategory(ctx context.Context, bookID, categoryID int64) error {
	const sql = `
		INSERT INTO book_categories (book_id, category_id)
		VALUES ($1, $2)`

	if _, err := postgres.Conn(ctx, s.db).Exec(ctx, sql, bookID, categoryID); err != nil {
		return fmt.Errorf("link category %d to book %d: %w", categoryID, bookID, err)
	}
	return nil
}

func (s *PostgresStore) SetPrimaryCategory(ctx context.Context, bookID, categoryID int64) error {
	const sql = `
		UPDATE books SET primary_category_id = $1, updated_at = now()
		WHERE id = $2`

	if _, err := postgres.Conn(ctx, s.db).Exec(ctx, sql, categoryID, bookID); err != nil {
		return fmt.Errorf("set primary category of book %d: %w", bookID, err)
	}
	return nil
}

func (s *PostgresStore) findOrCreate(ctx context.Context, selectSQL, insertSQL, key string) (int64, error) {
	id, err := s.findID(ctx, selectSQL, key)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	return s.findID(ctx, insertSQL, key)
}

func (s *PostgresStore) findID(ctx context.Context, sql string, args ...any) (int64, error) {
	var id int64
	err := postgres.Conn(ctx, s.db).QueryRow(ctx, sql, args...).Scan(&id)
	return id, err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
