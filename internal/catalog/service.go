package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service validates input and delegates to the Repository.
type Service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &Service{repo: repo, validate: v, logger: logger}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func (s *Service) CreateBook(ctx context.Context, in CreateBookInput) (BookView, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ISBN = strings.TrimSpace(in.ISBN)
	if err := s.check(in); err != nil {
		return BookView{}, err
	}
	return s.repo.CreateBook(ctx, in)
}

func (s *Service) FindAllBooks(ctx context.Context) []BookView {
	return s.repo.FindAllBooks(ctx)
}

func (s *Service) FindBookByID(ctx context.Context, id int64) (BookView, error) {
	return s.repo.FindBookByID(ctx, id)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, in UpdateBookInput) (BookView, error) {
	if err := s.check(in); err != nil {
		return BookView{}, err
	}
	return s.repo.UpdateBook(ctx, id, in)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) FindBooksByGenre(ctx context.Context, text string) ([]BookView, error) {
	return s.repo.FindBooksByGenre(ctx, text)
}

func (s *Service) CountBooks(ctx context.Context) (int, error) {
	return s.repo.CountBooks(ctx)
}

func (s *Service) ListPublisherNames(ctx context.Context) []string {
	return s.repo.ListPublisherNames(ctx)
}

func (s *Service) ListPublishersWithDetails(ctx context.Context) []Publisher {
	return s.repo.ListPublishersWithDetails(ctx)
}

func (s *Service) GetPublisherByName(ctx context.Context, name string) *Publisher {
	return s.repo.GetPublisherByName(ctx, name)
}

func (s *Service) GetPublisherByID(ctx context.Context, id int64) *Publisher {
	return s.repo.GetPublisherByID(ctx, id)
}

func (s *Service) ListBranches(ctx context.Context, publisherID int64) ([]Branch, error) {
	return s.repo.ListBranches(ctx, publisherID)
}

// check runs struct validation and converts failures into a
// *ValidationError listing every rejected field.
func (s *Service) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	s.logger.Debug("input rejected", zap.Any("fields", fields))
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
