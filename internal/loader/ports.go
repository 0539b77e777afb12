package loader

import (
	"context"
)

// Store is the find-or-create surface the loader drives. Implementations
// must run against the transaction carried by ctx when there is one.
type Store interface {
	// FindPublisherByName reports found=false when no publisher has exactly
	// this name. With duplicate names the lowest id wins.
	FindPublisherByName(ctx context.Context, name string) (id int64, found bool, err error)
	CreatePublisher(ctx context.Context, name string) (int64, error)

	BookExists(ctx context.Context, title, isbn string) (bool, error)
	InsertBook(ctx context.Context, b NewBook) (int64, error)

	FindOrCreateAuthor(ctx context.Context, fullName string) (int64, error)
	LinkAuthor(ctx context.Context, bookID, authorID int64, role string) error

	FindOrCreateCategory(ctx context.Context, name string) (int64, error)
	LinkCategory(ctx context.Context, bookID, categoryID int64) error
	SetPrimaryCategory(ctx context.Context, bookID, categoryID int64) error
}
