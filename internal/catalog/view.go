package catalog

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

const defaultAuthorRole = "Author"

// BookView is the flattened, client-facing book. The store-shaped columns of
// Book are kept alongside the client names publishedDate, createdAt and
// updatedAt.
type BookView struct {
	Book
	PublishedDate string         `json:"publishedDate"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Author        string         `json:"author"`
	Genre         string         `json:"genre"`
	Publisher     string         `json:"publisher"`
	Series        string         `json:"series,omitempty"`
	Authors       []AuthorCredit `json:"authors"`
	Categories    []CategoryName `json:"categories"`
	Reviews       []Review       `json:"reviews,omitempty"`
}

type AuthorCredit struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type CategoryName struct {
	Name string `json:"name"`
}

// ToBookView flattens a joined row. It never fails: relations that did not
// resolve become empty strings or empty entries.
//
// Genre comes only from the primary category pointer, never from the
// many-to-many category set.
func ToBookView(row BookRow) BookView {
	names := lo.FilterMap(row.Authors, func(a AuthorLink, _ int) (string, bool) {
		name := deref(a.FullName)
		return name, name != ""
	})

	view := BookView{
		Book:          row.Book,
		PublishedDate: deref(row.PublishedDate),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Author:        strings.Join(names, ", "),
		Genre:         deref(row.PrimaryCategoryName),
		Publisher:     deref(row.PublisherName),
		Series:        deref(row.SeriesName),
		Authors: lo.Map(row.Authors, func(a AuthorLink, _ int) AuthorCredit {
			role := deref(a.Role)
			if role == "" {
				role = defaultAuthorRole
			}
			return AuthorCredit{FullName: deref(a.FullName), Role: role}
		}),
		Categories: lo.Map(row.Categories, func(c CategoryLink, _ int) CategoryName {
			return CategoryName{Name: deref(c.Name)}
		}),
	}
	if len(row.Reviews) > 0 {
		view.Reviews = row.Reviews
	}
	return view
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
