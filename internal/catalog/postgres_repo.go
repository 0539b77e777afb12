package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"bookcatalog/internal/platform/logger"
	"bookcatalog/internal/platform/postgres"
)

const bookColumns = `b.id, b.title, b.subtitle, b.description, b.isbn, b.isbn13,
		       b.price, b.original_price, b.stock, b.language, b.page_count, b.format,
		       to_char(b.published_date, 'YYYY-MM-DD'), b.publisher_id, b.primary_category_id, b.series_id,
		       b.series_number, b.cover_image_url, b.is_bestseller, b.is_featured,
		       b.is_available, b.created_at, b.updated_at`

const authorsAgg = `COALESCE((
		           SELECT json_agg(json_build_object('full_name', a.full_name, 'role', ba.role) ORDER BY ba.id)
		           FROM book_authors ba
		           LEFT JOIN authors a ON a.id = ba.author_id
		           WHERE ba.book_id = b.id
		       ), '[]'::json)`

const categoriesAgg = `COALESCE((
		           SELECT json_agg(json_build_object('name', c.name) ORDER BY bc.id)
		           FROM book_categories bc
		           LEFT JOIN categories c ON c.id = bc.category_id
		           WHERE bc.book_id = b.id
		       ), '[]'::json)`

const reviewsAgg = `COALESCE((
		           SELECT json_agg(json_build_object(
		               'rating', r.rating, 'comment', r.comment, 'reviewer_name', r.reviewer_name,
		               'title', r.title, 'helpful_count', r.helpful_count) ORDER BY r.created_at DESC)
		           FROM reviews r
		           WHERE r.book_id = b.id
		       ), '[]'::json)`

const bookJoins = `FROM books b
		LEFT JOIN publishers p ON p.id = b.publisher_id
		LEFT JOIN categories pc ON pc.id = b.primary_category_id
		LEFT JOIN book_series s ON s.id = b.series_id`

// selectBookRows builds the joined read shared by every book listing.
func selectBookRows(withReviews bool) string {
	reviews := `'[]'::json`
	if withReviews {
		reviews = reviewsAgg
	}
	return `
		SELECT ` + bookColumns + `,
		       p.name, pc.name, s.name,
		       ` + authorsAgg + `,
		       ` + categoriesAgg + `,
		       ` + reviews + `
		` + bookJoins
}

const publisherColumns = `id, name, description, website,
		       email, phone, address, city, state, country, postal_code,
		       logo_url, banner_url, brand_color_primary, brand_color_secondary, tagline,
		       mission_statement, specialties, awards, notable_authors, founded_year, business_hours,
		       social_twitter, social_linkedin, social_instagram, social_facebook, social_youtube,
		       is_active, created_at, updated_at`

const branchColumns = `id, publisher_id, name, branch_type, address, city, country, phone, email,
		       latitude, longitude, is_main_branch, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

var _ Repository = (*PostgresRepo)(nil)

type PostgresRepo struct {
	db      postgres.DB
	logger  *zap.Logger
	timeout time.Duration
}

func NewPostgresRepo(db postgres.DB, logger *zap.Logger, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, logger: logger, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (b *Book) scanTargets() []any {
	return []any{
		&b.ID, &b.Title, &b.Subtitle, &b.Description, &b.ISBN, &b.ISBN13,
		&b.Price, &b.OriginalPrice, &b.Stock, &b.Language, &b.PageCount, &b.Format,
		&b.PublishedDate, &b.PublisherID, &b.PrimaryCategoryID, &b.SeriesID,
		&b.SeriesNumber, &b.CoverImageURL, &b.IsBestseller, &b.IsFeatured,
		&b.IsAvailable, &b.CreatedAt, &b.UpdatedAt,
	}
}

func scanBookRow(s rowScanner) (BookRow, error) {
	var (
		row                         BookRow
		authors, categories, review []byte
	)
	dest := append(row.Book.scanTargets(),
		&row.PublisherName, &row.PrimaryCategoryName, &row.SeriesName,
		&authors, &categories, &review,
	)
	if err := s.Scan(dest...); err != nil {
		return BookRow{}, err
	}
	if err := row.decodeRelations(authors, categories, review); err != nil {
		return BookRow{}, err
	}
	return row, nil
}

func (r *PostgresRepo) queryBookViews(ctx context.Context, sql string, args ...any) ([]BookView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookView{}
	for rows.Next() {
		row, err := scanBookRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ToBookView(row))
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateBook(ctx context.Context, in CreateBookInput) (BookView, error) {
	const query = `
		INSERT INTO books AS b (title, description, isbn, price, stock, published_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bookColumns

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(ctx, query,
		in.Title, in.Description, in.ISBN, lo.FromPtr(in.Price), lo.FromPtr(in.Stock), in.PublishedDate,
	).Scan(b.scanTargets()...)
	if err != nil {
		return BookView{}, writeError("failed to create book", err)
	}
	return ToBookView(BookRow{Book: b}), nil
}

// FindAllBooks lists every book, newest first.
func (r *PostgresRepo) FindAllBooks(ctx context.Context) []BookView {
	books, err := r.queryBookViews(ctx, selectBookRows(false)+`
		ORDER BY b.created_at DESC`)
	if logger.CheckError(err, r.logger, "failed to fetch books, returning empty list", zap.String("op", "FindAllBooks")) {
		return []BookView{}
	}
	return books
}

// FindBookByID reads one book with its reviews. A store failure is
// reported as ErrNotFound, same as an absent row.
func (r *PostgresRepo) FindBookByID(ctx context.Context, id int64) (BookView, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := scanBookRow(r.db.QueryRow(ctx, selectBookRows(true)+`
		WHERE b.id = $1`, id))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.CheckError(err, r.logger, "book lookup failed", zap.String("op", "FindBookByID"), zap.Int64("book_id", id))
		}
		return BookView{}, fmt.Errorf("book with ID %d: %w", id, ErrNotFound)
	}
	return ToBookView(row), nil
}

// UpdateBook writes the fields present in the input, then reselects the
// joined book. Author and category links are not touched.
func (r *PostgresRepo) UpdateBook(ctx context.Context, id int64, in UpdateBookInput) (BookView, error) {
	if in.IsEmpty() {
		return r.FindBookByID(ctx, id)
	}

	sets := []string{}
	args := []any{}
	argn := 1
	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argn))
		args = append(args, v)
		argn++
	}

	if in.Title != nil {
		set("title", *in.Title)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.ISBN != nil {
		set("isbn", *in.ISBN)
	}
	if in.Price != nil {
		set("price", *in.Price)
	}
	if in.Stock != nil {
		set("stock", *in.Stock)
	}
	if in.PublishedDate != nil {
		set("published_date", *in.PublishedDate)
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf(`
		UPDATE books SET %s
		WHERE id = $%d
		RETURNING id`, strings.Join(sets, ", "), argn)
	args = append(args, id)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var updatedID int64
	if err := r.db.QueryRow(timeoutCtx, query, args...).Scan(&updatedID); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.CheckError(err, r.logger, "book update failed", zap.String("op", "UpdateBook"), zap.Int64("book_id", id))
		}
		return BookView{}, fmt.Errorf("book with ID %d not found or update failed: %w", id, ErrNotFound)
	}

	return r.FindBookByID(ctx, updatedID)
}

// DeleteBook removes the book row; links and reviews cascade. Deleting an
// absent id succeeds.
func (r *PostgresRepo) DeleteBook(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return writeError("failed to delete book", err)
	}
	return nil
}

// FindBooksByGenre matches text as a case-insensitive substring of the
// title or the description. It does not look at categories.
func (r *PostgresRepo) FindBooksByGenre(ctx context.Context, text string) ([]BookView, error) {
	pattern := "%" + escapeLike(text) + "%"
	books, err := r.queryBookViews(ctx, selectBookRows(false)+`
		WHERE b.title ILIKE $1 OR b.description ILIKE $1
		ORDER BY b.created_at DESC`, pattern)
	if err != nil {
		return nil, queryError("failed to search books by genre", err)
	}
	return books, nil
}

func (r *PostgresRepo) CountBooks(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, queryError("failed to count books", err)
	}
	return count, nil
}

// ListPublisherNames returns the distinct, non-blank names of publishers
// that have at least one book, sorted ascending.
func (r *PostgresRepo) ListPublisherNames(ctx context.Context) []string {
	names, err := r.publisherNamesOfBooks(ctx)
	if logger.CheckError(err, r.logger, "failed to fetch publishers, returning empty list", zap.String("op", "ListPublisherNames")) {
		return []string{}
	}

	names = lo.Uniq(lo.Filter(names, func(n string, _ int) bool {
		return strings.TrimSpace(n) != ""
	}))
	slices.Sort(names)
	return names
}

func (r *PostgresRepo) publisherNamesOfBooks(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT p.name
		FROM books b
		JOIN publishers p ON p.id = b.publisher_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresRepo) ListPublishersWithDetails(ctx context.Context) []Publisher {
	publishers, err := r.queryPublishers(ctx, `
		SELECT `+publisherColumns+`
		FROM publishers
		WHERE is_active = true
		ORDER BY name`)
	if logger.CheckError(err, r.logger, "failed to fetch publisher details, returning empty list", zap.String("op", "ListPublishersWithDetails")) {
		return []Publisher{}
	}
	return publishers
}

// GetPublisherByName returns nil when no publisher has exactly this name or
// the lookup fails.
func (r *PostgresRepo) GetPublisherByName(ctx context.Context, name string) *Publisher {
	return r.getPublisher(ctx, "GetPublisherByName", `
		SELECT `+publisherColumns+`
		FROM publishers
		WHERE name = $1
		ORDER BY id
		LIMIT 1`, name)
}

func (r *PostgresRepo) GetPublisherByID(ctx context.Context, id int64) *Publisher {
	return r.getPublisher(ctx, "GetPublisherByID", `
		SELECT `+publisherColumns+`
		FROM publishers
		WHERE id = $1`, id)
}

func (r *PostgresRepo) getPublisher(ctx context.Context, op, query string, key any) *Publisher {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	p, err := scanPublisher(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.CheckError(err, r.logger, "publisher lookup failed", zap.String("op", op), zap.Any("key", key))
		}
		return nil
	}
	return &p
}

func (r *PostgresRepo) queryPublishers(ctx context.Context, query string, args ...any) ([]Publisher, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Publisher{}
	for rows.Next() {
		p, err := scanPublisher(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPublisher(s rowScanner) (Publisher, error) {
	var (
		p     Publisher
		hours []byte
	)
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Website,
		&p.Contact.Email, &p.Contact.Phone, &p.Contact.Address, &p.Contact.City,
		&p.Contact.State, &p.Contact.Country, &p.Contact.PostalCode,
		&p.Branding.LogoURL, &p.Branding.BannerURL, &p.Branding.BrandColorPrimary,
		&p.Branding.BrandColorSecondary, &p.Branding.Tagline,
		&p.MissionStatement, &p.Specialties, &p.Awards, &p.NotableAuthors, &p.FoundedYear, &hours,
		&p.Social.Twitter, &p.Social.LinkedIn, &p.Social.Instagram, &p.Social.Facebook, &p.Social.YouTube,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return Publisher{}, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &p.BusinessHours); err != nil {
			return Publisher{}, fmt.Errorf("decode business_hours: %w", err)
		}
	}
	return p, nil
}

// ListBranches returns the branches of one publisher, main branch first.
func (r *PostgresRepo) ListBranches(ctx context.Context, publisherID int64) ([]Branch, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+branchColumns+`
		FROM branches
		WHERE publisher_id = $1
		ORDER BY is_main_branch DESC, name`, publisherID)
	if err != nil {
		return nil, queryError("failed to list branches", err)
	}
	defer rows.Close()

	out := []Branch{}
	for rows.Next() {
		var b Branch
		if err := rows.Scan(
			&b.ID, &b.PublisherID, &b.Name, &b.BranchType, &b.Address, &b.City, &b.Country,
			&b.Phone, &b.Email, &b.Latitude, &b.Longitude, &b.IsMainBranch, &b.CreatedAt,
		); err != nil {
			return nil, queryError("failed to scan branch", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("failed to list branches", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
