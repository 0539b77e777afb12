package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"bookcatalog/internal/platform/logger"
	"bookcatalog/internal/platform/postgres"
)

const authorRole = "Author"

// errDuplicate stops the per-book transaction without treating the book as
// failed.
var errDuplicate = errors.New("book already exists")

type Service struct {
	store    Store
	tx       postgres.Transactor
	logger   *zap.Logger
	validate *validator.Validate
	outcomes *prometheus.CounterVec
}

// NewService wires the loader. reg may be nil, in which case the outcome
// counter is kept but not exported.
func NewService(store Store, tx postgres.Transactor, logger *zap.Logger, reg prometheus.Registerer) *Service {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookcatalog",
		Subsystem: "loader",
		Name:      "books_total",
		Help:      "Seeded books by outcome.",
	}, []string{"outcome"})
	if reg != nil {
		reg.MustRegister(outcomes)
	}

	return &Service{
		store:    store,
		tx:       tx,
		logger:   logger,
		validate: validator.New(),
		outcomes: outcomes,
	}
}

// Run seeds books. Publishers are ensured first and stay created even if
// every book later fails. Each book is then loaded in its own transaction;
// a failure rolls back that book only and the batch continues.
func (s *Service) Run(ctx context.Context, books []SeedBook) Report {
	report := Report{Books: make([]BookOutcome, 0, len(books))}

	names := distinctNames(lo.Map(books, func(b SeedBook, _ int) string { return b.Publisher }))
	logger.MakeInfo(s.logger, "ensuring publishers exist", zap.Strings("publishers", names))

	for _, name := range names {
		s.ensurePublisher(ctx, name, &report)
	}

	for _, book := range books {
		outcome := s.loadBook(ctx, book)
		s.outcomes.WithLabelValues(string(outcome.Outcome)).Inc()
		report.add(outcome)
	}

	logger.MakeInfo(s.logger, "seed run finished",
		zap.Int("publishers_created", report.PublishersCreated),
		zap.Int("publishers_existing", report.PublishersExisting),
		zap.Int("publishers_failed", report.PublishersFailed),
		zap.Int("books_inserted", report.BooksInserted),
		zap.Int("books_skipped_duplicate", report.BooksSkippedDuplicate),
		zap.Int("books_skipped_no_publisher", report.BooksSkippedNoPublisher),
		zap.Int("books_failed", report.BooksFailed),
	)
	return report
}

// SeedPublishers ensures every named publisher exists. Only the publisher
// counters of the returned Report are set.
func (s *Service) SeedPublishers(ctx context.Context, names []string) Report {
	report := Report{Books: []BookOutcome{}}
	for _, name := range distinctNames(names) {
		s.ensurePublisher(ctx, name, &report)
	}
	return report
}

// distinctNames drops blank names and repeats, keeping first-seen order.
func distinctNames(names []string) []string {
	return lo.Uniq(lo.Filter(names, func(n string, _ int) bool {
		return strings.TrimSpace(n) != ""
	}))
}

func (s *Service) ensurePublisher(ctx context.Context, name string, report *Report) {
	id, found, err := s.store.FindPublisherByName(ctx, name)
	if logger.CheckError(err, s.logger, "publisher lookup failed", zap.String("publisher", name)) {
		report.PublishersFailed++
		return
	}
	if found {
		report.PublishersExisting++
		logger.MakeInfo(s.logger, "publisher already exists", zap.String("publisher", name), zap.Int64("publisher_id", id))
		return
	}

	id, err = s.store.CreatePublisher(ctx, name)
	if logger.CheckError(err, s.logger, "publisher creation failed", zap.String("publisher", name)) {
		report.PublishersFailed++
		return
	}
	report.PublishersCreated++
	logger.MakeInfo(s.logger, "created publisher", zap.String("publisher", name), zap.Int64("publisher_id", id))
}

func (s *Service) loadBook(ctx context.Context, book SeedBook) BookOutcome {
	out := BookOutcome{Title: book.Title, ISBN: book.ISBN}
	fields := []zap.Field{zap.String("title", book.Title), zap.String("isbn", book.ISBN)}

	if err := ctx.Err(); err != nil {
		return s.failed(out, err, fields)
	}
	if err := s.validate.Struct(book); err != nil {
		return s.failed(out, fmt.Errorf("invalid seed record: %w", err), fields)
	}

	if strings.TrimSpace(book.Publisher) == "" {
		out.Outcome = OutcomeNoPublisher
		logger.MakeWarn(s.logger, "book has no publisher, skipping", fields...)
		return out
	}

	publisherID, found, err := s.store.FindPublisherByName(ctx, book.Publisher)
	if err != nil {
		return s.failed(out, err, fields)
	}
	if !found {
		out.Outcome = OutcomeNoPublisher
		logger.MakeWarn(s.logger, "publisher not found for book, skipping", append(fields, zap.String("publisher", book.Publisher))...)
		return out
	}
	out.Stage = StagePublisherResolved

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.store.BookExists(ctx, book.Title, book.ISBN)
		if err != nil {
			return err
		}
		if exists {
			return errDuplicate
		}

		bookID, err := s.store.InsertBook(ctx, NewBook{
			Title:         book.Title,
			Description:   book.Description,
			ISBN:          book.ISBN,
			Price:         book.Price,
			Stock:         book.Stock,
			PublishedDate: book.PublishedDate,
			PublisherID:   publisherID,
		})
		if err != nil {
			return err
		}
		out.BookID = bookID
		out.Stage = StageInserted

		if book.Author != "" {
			authorID, err := s.store.FindOrCreateAuthor(ctx, book.Author)
			if err != nil {
				return err
			}
			if err := s.store.LinkAuthor(ctx, bookID, authorID, authorRole); err != nil {
				return err
			}
		}
		out.Stage = StageAuthorLinked

		if book.Genre != "" {
			categoryID, err := s.store.FindOrCreateCategory(ctx, book.Genre)
			if err != nil {
				return err
			}
			if err := s.store.LinkCategory(ctx, bookID, categoryID); err != nil {
				return err
			}
			if err := s.store.SetPrimaryCategory(ctx, bookID, categoryID); err != nil {
				return err
			}
		}
		out.Stage = StageCategoryLinked
		return nil
	})

	switch {
	case errors.Is(err, errDuplicate):
		out.Outcome = OutcomeDuplicate
		logger.MakeInfo(s.logger, "book already exists, skipping", fields...)
		return out
	case err != nil:
		out.BookID = 0
		return s.failed(out, err, fields)
	}

	out.Outcome = OutcomeInserted
	out.Stage = StageDone
	logger.MakeInfo(s.logger, "added book", append(fields,
		zap.Int64("book_id", out.BookID), zap.String("author", book.Author))...)
	return out
}

func (s *Service) failed(out BookOutcome, err error, fields []zap.Field) BookOutcome {
	out.Outcome = OutcomeFailed
	out.Error = err.Error()
	logger.CheckError(err, s.logger, "failed to load book", append(fields, zap.String("stage", string(out.Stage)))...)
	return out
}
