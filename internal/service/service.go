package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"studyaid/internal/clock"
	"studyaid/internal/model"
	"studyaid/internal/repository"
	"studyaid/internal/storage"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrReaderNil    = errors.New("reader is nil")
)

// NotFoundError reports which referenced record was missing. It matches ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// notFound translates a repository miss into a NotFoundError for entity/id.
func notFound(err error, entity string, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}

// StudyService is the single source of truth for a study session: documents,
// generated guides and quizzes, results, chat and reminders.
// Every operation waits a simulated backend latency before touching state.
type StudyService interface {
	ListDocuments(ctx context.Context) ([]model.Document, error)
	// UploadDocument stores the file and returns the unprocessed record immediately.
	// Processing runs later in the background and derives one guide and one quiz.
	UploadDocument(ctx context.Context, in UploadInput) (*model.Document, error)
	// DeleteDocument removes the document and its guides and quizzes. Unknown IDs are a no-op.
	DeleteDocument(ctx context.Context, id int64) error

	ListStudyGuides(ctx context.Context) ([]model.StudyGuide, error)
	GenerateStudyGuide(ctx context.Context, in GenerateStudyGuideInput) (*model.StudyGuide, error)

	ListMockTests(ctx context.Context) ([]model.MockTest, error)
	GenerateMockTest(ctx context.Context, in GenerateMockTestInput) (*model.MockTest, error)

	SubmitTestResult(ctx context.Context, in SubmitTestResultInput) (*model.TestResult, error)
	ListTestResults(ctx context.Context) ([]model.TestResult, error)

	ListChatMessages(ctx context.Context) ([]model.ChatMessage, error)
	// SendChatMessage appends the user's message and the assistant reply and returns both, user first.
	SendChatMessage(ctx context.Context, message string) ([]model.ChatMessage, error)

	ListReminders(ctx context.Context) ([]model.Reminder, error)
	CreateReminder(ctx context.Context, in model.ReminderInput) (*model.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, patch model.ReminderPatch) (*model.Reminder, error)
	// DeleteReminder removes a reminder. Unknown IDs are a no-op.
	DeleteReminder(ctx context.Context, id int64) error

	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// Latency is the simulated delay of each operation class.
type Latency struct {
	List       time.Duration
	Upload     time.Duration
	Generate   time.Duration
	Submit     time.Duration
	Chat       time.Duration
	Write      time.Duration
	Delete     time.Duration
	Stats      time.Duration
	Processing time.Duration
}

// DefaultLatency mirrors the delays the UI was designed against.
func DefaultLatency() Latency {
	return Latency{
		List:       300 * time.Millisecond,
		Upload:     2000 * time.Millisecond,
		Generate:   2000 * time.Millisecond,
		Submit:     500 * time.Millisecond,
		Chat:       800 * time.Millisecond,
		Write:      400 * time.Millisecond,
		Delete:     300 * time.Millisecond,
		Stats:      400 * time.Millisecond,
		Processing: 3000 * time.Millisecond,
	}
}

// Scale multiplies every delay by f.
func (l Latency) Scale(f float64) Latency {
	mul := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }
	return Latency{
		List:       mul(l.List),
		Upload:     mul(l.Upload),
		Generate:   mul(l.Generate),
		Submit:     mul(l.Submit),
		Chat:       mul(l.Chat),
		Write:      mul(l.Write),
		Delete:     mul(l.Delete),
		Stats:      mul(l.Stats),
		Processing: mul(l.Processing),
	}
}

// Options configures a Service. Zero values select production defaults.
type Options struct {
	Clock     clock.Clock
	Responder Responder
	// Latency nil means DefaultLatency.
	Latency *Latency
	OwnerID int64
	Logger  *slog.Logger
}

// Service implements StudyService over a Repository and a Storage.
type Service struct {
	repo      repository.Repository
	store     storage.Storage
	clock     clock.Clock
	responder Responder
	latency   Latency
	ownerID   int64
	logger    *slog.Logger
	tracer    trace.Tracer

	mu      sync.Mutex
	pending map[int64]clock.Timer
	closed  bool
}

var _ StudyService = (*Service)(nil)

// NewStudyService constructs a Service.
func NewStudyService(repo repository.Repository, store storage.Storage, opts Options) *Service {
	s := &Service{
		repo:      repo,
		store:     store,
		clock:     opts.Clock,
		responder: opts.Responder,
		latency:   DefaultLatency(),
		ownerID:   opts.OwnerID,
		logger:    opts.Logger,
		tracer:    otel.Tracer("studyaid/service"),
		pending:   make(map[int64]clock.Timer),
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.responder == nil {
		s.responder = NewCannedResponder()
	}
	if opts.Latency != nil {
		s.latency = *opts.Latency
	}
	if s.ownerID == 0 {
		s.ownerID = 1
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "service")
	return s
}

// Close cancels every pending processing task. Later uploads are stored but never processed.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
	return nil
}

// start opens the operation span and waits out the simulated latency.
// The returned span must be ended by the caller even when err is non-nil.
func (s *Service) start(ctx context.Context, op string, d time.Duration) (context.Context, trace.Span, error) {
	ctx, span := s.tracer.Start(ctx, "service."+op)
	if err := s.clock.Sleep(ctx, d); err != nil {
		span.RecordError(err)
		return ctx, span, err
	}
	return ctx, span, nil
}

func isRepoNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
