package loader

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var midnightLibrary = SeedBook{
	Title:         "The Midnight Library",
	Author:        "Matt Haig",
	Publisher:     "Hachette Book Group",
	Description:   "A novel about life choices and alternate realities.",
	ISBN:          "978-0525559474",
	Price:         26.00,
	Stock:         15,
	Genre:         "Fiction",
	PublishedDate: "2020-08-13",
}

func TestService_Run_MidnightLibrary(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, snapshotTx{store: store}, zap.NewNop(), nil)

	report := svc.Run(context.Background(), []SeedBook{midnightLibrary})

	assert.Equal(t, 1, report.PublishersCreated)
	assert.Equal(t, 1, report.BooksInserted)
	require.Len(t, report.Books, 1)
	assert.Equal(t, StageDone, report.Books[0].Stage)

	views := store.views()
	require.Len(t, views, 1)
	assert.Equal(t, "Matt Haig", views[0].Author)
	assert.Equal(t, "Hachette Book Group", views[0].Publisher)
	assert.Equal(t, "Fiction", views[0].Genre)
	assert.Equal(t, 26.00, views[0].Price)
	assert.Equal(t, "Author", views[0].Authors[0].Role)
}

func TestService_Run_Idempotent(t *testing.T) {
	store := newMemStore()
	reg := prometheus.NewRegistry()
	svc := NewService(store, snapshotTx{store: store}, zap.NewNop(), reg)

	first := svc.Run(context.Background(), SampleCatalog())
	assert.Equal(t, 11, first.PublishersCreated)
	assert.Equal(t, 21, first.BooksInserted)
	assert.Zero(t, first.BooksFailed)

	second := svc.Run(context.Background(), SampleCatalog())
	assert.Zero(t, second.PublishersCreated)
	assert.Equal(t, 11, second.PublishersExisting)
	assert.Zero(t, second.BooksInserted)
	assert.Equal(t, 21, second.BooksSkippedDuplicate)

	assert.Len(t, store.state.books, 21)
	assert.Len(t, store.state.authors, 20)
	assert.Len(t, store.state.categories, 15)
	assert.Len(t, store.state.bookAuthors, 21)

	assert.Equal(t, 21.0, testutil.ToFloat64(svc.outcomes.WithLabelValues(string(OutcomeInserted))))
	assert.Equal(t, 21.0, testutil.ToFloat64(svc.outcomes.WithLabelValues(string(OutcomeDuplicate))))
}

func TestService_Run_SharedISBNIsNotADuplicate(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, snapshotTx{store: store}, zap.NewNop(), nil)

	gray := SeedBook{Title: "Gray's Anatomy", Author: "Henry Gray", Publisher: "Elsevier", ISBN: "978-0323353175", Price: 125, Genre: "Medical"}
	robbins := SeedBook{Title: "Robbins Basic Pathology", Author: "Vinay Kumar", Publisher: "Elsevier", ISBN: "978-0323353175", Price: 95, Genre: "Medical"}

	report := svc.Run(context.Background(), []SeedBook{gray, robbins})

	assert.Equal(t, 2, report.BooksInserted)
	assert.Len(t, store.state.categories, 1)
}

func TestService_Run_FailedBookRollsBackAndBatchContinues(t *testing.T) {
	store := newMemStore()
	store.failOn["LinkCategory"] = midnightLibrary.Title
	core, logs := observer.New(zapcore.ErrorLevel)
	svc := NewService(store, snapshotTx{store: store}, zap.New(core), nil)

	other := SeedBook{Title: "Atomic Habits", Author: "James Clear", Publisher: "Hachette Book Group", ISBN: "978-0735211292", Price: 27, Genre: "Self-Help"}
	report := svc.Run(context.Background(), []SeedBook{midnightLibrary, other})

	assert.Equal(t, 1, report.BooksFailed)
	assert.Equal(t, 1, report.BooksInserted)
	failed := report.Books[0]
	assert.Equal(t, OutcomeFailed, failed.Outcome)
	assert.Equal(t, StageAuthorLinked, failed.Stage)
	assert.Zero(t, failed.BookID)
	assert.Contains(t, failed.Error, errInjected.Error())
	assert.Equal(t, 1, logs.FilterMessage("failed to load book").Len())

	require.Len(t, store.state.books, 1)
	assert.Equal(t, "Atomic Habits", store.state.books[0].Title)
	assert.Len(t, store.state.bookAuthors, 1)
	assert.Len(t, store.state.publishers, 1)

	delete(store.failOn, "LinkCategory")
	retry := svc.Run(context.Background(), []SeedBook{midnightLibrary, other})
	assert.Equal(t, 1, retry.BooksInserted)
	assert.Equal(t, 1, retry.BooksSkippedDuplicate)
	assert.Len(t, store.state.books, 2)
}

func TestService_Run_ConcurrentPublisherRace(t *testing.T) {
	store := newMemStore()
	store.lookupBarrier = &sync.WaitGroup{}
	store.lookupBarrier.Add(2)
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	var wg sync.WaitGroup
	reports := make([]Report, 2)
	for i := range reports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i] = svc.Run(context.Background(), []SeedBook{midnightLibrary})
		}()
	}
	wg.Wait()

	// Both runs saw the publisher as absent and created it.
	assert.Equal(t, 1, reports[0].PublishersCreated)
	assert.Equal(t, 1, reports[1].PublishersCreated)
	assert.Len(t, store.state.publishers, 2)

	publisherIDs := map[int64]bool{}
	for _, p := range store.state.publishers {
		publisherIDs[p.id] = true
	}
	require.NotEmpty(t, store.state.books)
	for _, b := range store.state.books {
		assert.True(t, publisherIDs[b.PublisherID], "book %d links to unknown publisher %d", b.id, b.PublisherID)
	}
	for _, v := range store.views() {
		assert.Equal(t, "Hachette Book Group", v.Publisher)
		assert.Equal(t, "Matt Haig", v.Author)
	}
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindPublisherByName(ctx context.Context, name string) (int64, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *mockStore) CreatePublisher(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) BookExists(ctx context.Context, title, isbn string) (bool, error) {
	args := m.Called(ctx, title, isbn)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) InsertBook(ctx context.Context, b NewBook) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) FindOrCreateAuthor(ctx context.Context, fullName string) (int64, error) {
	args := m.Called(ctx, fullName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) LinkAuthor(ctx context.Context, bookID, authorID int64, role string) error {
	return m.Called(ctx, bookID, authorID, role).Error(0)
}

func (m *mockStore) FindOrCreateCategory(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) LinkCategory(ctx context.Context, bookID, categoryID int64) error {
	return m.Called(ctx, bookID, categoryID).Error(0)
}

func (m *mockStore) SetPrimaryCategory(ctx context.Context, bookID, categoryID int64) error {
	return m.Called(ctx, bookID, categoryID).Error(0)
}

func TestService_Run_PublisherFailures(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	store.On("FindPublisherByName", mock.Anything, "Hachette Book Group").Return(int64(0), false, nil)
	store.On("CreatePublisher", mock.Anything, "Hachette Book Group").Return(int64(0), errInjected)

	report := svc.Run(context.Background(), []SeedBook{midnightLibrary})

	assert.Equal(t, 1, report.PublishersFailed)
	assert.Equal(t, 1, report.BooksSkippedNoPublisher)
	assert.Equal(t, OutcomeNoPublisher, report.Books[0].Outcome)
	store.AssertNotCalled(t, "BookExists", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestService_Run_LookupErrorFailsBook(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	store.On("FindPublisherByName", mock.Anything, "Hachette Book Group").Return(int64(1), true, nil).Once()
	store.On("FindPublisherByName", mock.Anything, "Hachette Book Group").Return(int64(0), false, errInjected).Once()

	report := svc.Run(context.Background(), []SeedBook{midnightLibrary})

	assert.Equal(t, 1, report.PublishersExisting)
	assert.Equal(t, 1, report.BooksFailed)
	assert.Empty(t, report.Books[0].Stage)
	store.AssertExpectations(t)
}

func TestService_Run_InsertsWithoutOptionalRelations(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	book := SeedBook{Title: "Untitled Draft", Publisher: "Wiley", ISBN: "000", Price: 1}
	store.On("FindPublisherByName", mock.Anything, "Wiley").Return(int64(3), true, nil)
	store.On("BookExists", mock.Anything, "Untitled Draft", "000").Return(false, nil)
	store.On("InsertBook", mock.Anything, NewBook{Title: "Untitled Draft", ISBN: "000", Price: 1, PublisherID: 3}).Return(int64(9), nil)

	report := svc.Run(context.Background(), []SeedBook{book})

	assert.Equal(t, 1, report.BooksInserted)
	assert.Equal(t, int64(9), report.Books[0].BookID)
	store.AssertNotCalled(t, "FindOrCreateAuthor", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "FindOrCreateCategory", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestService_Run_InvalidRecord(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	store.On("FindPublisherByName", mock.Anything, "Wiley").Return(int64(3), true, nil)

	report := svc.Run(context.Background(), []SeedBook{
		{Title: "Negative", Publisher: "Wiley", ISBN: "1", Price: -4},
		{Publisher: "Wiley", ISBN: "2", Price: 4},
	})

	assert.Equal(t, 2, report.BooksFailed)
	store.AssertNumberOfCalls(t, "FindPublisherByName", 1)
}

func TestService_Run_CancelledContext(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, snapshotTx{store: store}, zap.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := svc.Run(ctx, []SeedBook{midnightLibrary})

	assert.Equal(t, 1, report.BooksFailed)
	assert.Contains(t, report.Books[0].Error, context.Canceled.Error())
	assert.Empty(t, store.state.books)
}

func TestService_SeedPublishers(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	report := svc.SeedPublishers(context.Background(), SamplePublishers())
	assert.Equal(t, 15, report.PublishersCreated)

	report = svc.SeedPublishers(context.Background(), append(SamplePublishers(), "Wiley"))
	assert.Equal(t, 15, report.PublishersExisting)
	assert.NotNil(t, report.Books)
}

func TestService_SeedPublishers_SkipsBlankNames(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	report := svc.SeedPublishers(context.Background(), []string{"", "  ", "Penguin Books"})

	assert.Equal(t, 1, report.PublishersCreated)
	assert.Zero(t, report.PublishersFailed)
	assert.Len(t, store.state.publishers, 1)
}

func TestService_Run_BlankPublisherIsSkipped(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, passthroughTx{}, zap.NewNop(), nil)

	report := svc.Run(context.Background(), []SeedBook{
		{Title: "Orphan", ISBN: "1", Price: 1},
		{Title: "Blank Imprint", Publisher: "   ", ISBN: "2", Price: 1},
	})

	assert.Equal(t, 2, report.BooksSkippedNoPublisher)
	assert.Zero(t, report.BooksFailed)
	assert.Zero(t, report.PublishersCreated)
	for _, b := range report.Books {
		assert.Equal(t, OutcomeNoPublisher, b.Outcome)
	}
	store.AssertNotCalled(t, "FindPublisherByName", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CreatePublisher", mock.Anything, mock.Anything)
}
