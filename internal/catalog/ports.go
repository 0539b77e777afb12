package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository is the Catalog Repository contract.
//
// FindAllBooks, ListPublisherNames, ListPublishersWithDetails and the
// publisher lookups never fail: a store error is logged and an empty result
// (or nil) is returned so listing endpoints stay available during a partial
// store outage. Callers must not read an empty result as an empty catalog.
type Repository interface {
	CreateBook(ctx context.Context, in CreateBookInput) (BookView, error)
	FindAllBooks(ctx context.Context) []BookView
	FindBookByID(ctx context.Context, id int64) (BookView, error)
	UpdateBook(ctx context.Context, id int64, in UpdateBookInput) (BookView, error)
	DeleteBook(ctx context.Context, id int64) error
	FindBooksByGenre(ctx context.Context, text string) ([]BookView, error)
	CountBooks(ctx context.Context) (int, error)

	ListPublisherNames(ctx context.Context) []string
	ListPublishersWithDetails(ctx context.Context) []Publisher
	GetPublisherByName(ctx context.Context, name string) *Publisher
	GetPublisherByID(ctx context.Context, id int64) *Publisher
	ListBranches(ctx context.Context, publisherID int64) ([]Branch, error)
}
