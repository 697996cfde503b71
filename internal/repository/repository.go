package repository

import (
	"context"
	"errors"

	"studyaid/internal/model"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository defines data access for every study-aid collection.
// No business logic here: scoring, templating and latency live in the service layer.
// All returned records are copies; callers never alias stored state.
type Repository interface {
	DocumentRepository
	StudyGuideRepository
	MockTestRepository
	TestResultRepository
	ChatRepository
	ReminderRepository
}

// DocumentRepository stores uploaded documents.
type DocumentRepository interface {
	// ListDocuments returns all documents in insertion order.
	ListDocuments(ctx context.Context) ([]model.Document, error)

	// FindDocument returns a document by ID or ErrNotFound.
	FindDocument(ctx context.Context, id int64) (*model.Document, error)

	// CreateDocument assigns the next document ID and appends the record.
	CreateDocument(ctx context.Context, doc model.Document) (*model.Document, error)

	// UpdateDocument applies fn to the stored document under the write lock.
	UpdateDocument(ctx context.Context, id int64, fn func(*model.Document)) (*model.Document, error)

	// DeleteDocument removes a document together with its study guides and mock tests.
	// It returns the removed document, or nil when no document had that ID.
	DeleteDocument(ctx context.Context, id int64) (*model.Document, error)
}

// StudyGuideRepository stores study guides.
type StudyGuideRepository interface {
	ListStudyGuides(ctx context.Context) ([]model.StudyGuide, error)

	// CreateStudyGuide fails with ErrNotFound if guide.DocumentID does not exist.
	CreateStudyGuide(ctx context.Context, guide model.StudyGuide) (*model.StudyGuide, error)
}

// MockTestRepository stores generated quizzes.
type MockTestRepository interface {
	ListMockTests(ctx context.Context) ([]model.MockTest, error)
	FindMockTest(ctx context.Context, id int64) (*model.MockTest, error)

	// CreateMockTest fails with ErrNotFound if test.DocumentID does not exist.
	CreateMockTest(ctx context.Context, test model.MockTest) (*model.MockTest, error)
}

// TestResultRepository stores scored attempts.
type TestResultRepository interface {
	ListTestResults(ctx context.Context) ([]model.TestResult, error)

	// CreateTestResult fails with ErrNotFound if result.MockTestID does not exist.
	CreateTestResult(ctx context.Context, result model.TestResult) (*model.TestResult, error)
}

// ChatRepository stores the chat log.
type ChatRepository interface {
	ListChatMessages(ctx context.Context) ([]model.ChatMessage, error)

	// AppendChatMessages appends msgs atomically, in order, assigning consecutive IDs.
	AppendChatMessages(ctx context.Context, msgs ...model.ChatMessage) ([]model.ChatMessage, error)
}

// ReminderRepository stores reminders.
type ReminderRepository interface {
	ListReminders(ctx context.Context) ([]model.Reminder, error)
	CreateReminder(ctx context.Context, r model.Reminder) (*model.Reminder, error)

	// UpdateReminder merges patch into the stored reminder or returns ErrNotFound.
	UpdateReminder(ctx context.Context, id int64, patch model.ReminderPatch) (*model.Reminder, error)

	// DeleteReminder removes a reminder. Missing IDs are not an error.
	DeleteReminder(ctx context.Context, id int64) error
}
