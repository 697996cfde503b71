package memory

import (
	"context"
	"sync"

	"studyaid/internal/model"
	"studyaid/internal/repository"
)

// Store is an in-process implementation of repository.Repository.
// One RWMutex guards all collections so that cross-collection mutations
// (the document cascade, existence checks on create) are a single critical section.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	mu sync.RWMutex

	documents   table[model.Document]
	studyGuides table[model.StudyGuide]
	mockTests   table[model.MockTest]
	testResults table[model.TestResult]
	chat        table[model.ChatMessage]
	reminders   table[model.Reminder]
}

// Snapshot is the initial content of a Store. Records keep their IDs;
// counters continue after the highest seeded ID of each collection.
type Snapshot struct {
	Documents    []model.Document
	StudyGuides  []model.StudyGuide
	MockTests    []model.MockTest
	TestResults  []model.TestResult
	ChatMessages []model.ChatMessage
	Reminders    []model.Reminder
}

var _ repository.Repository = (*Store)(nil)

// NewStore creates a Store holding a copy of snap. A nil snapshot yields an empty store.
func NewStore(snap *Snapshot) *Store {
	s := &Store{
		documents:   newTable(func(d model.Document) int64 { return d.ID }, func(d *model.Document, id int64) { d.ID = id }, nil),
		studyGuides: newTable(func(g model.StudyGuide) int64 { return g.ID }, func(g *model.StudyGuide, id int64) { g.ID = id }, model.StudyGuide.Clone),
		mockTests:   newTable(func(t model.MockTest) int64 { return t.ID }, func(t *model.MockTest, id int64) { t.ID = id }, model.MockTest.Clone),
		testResults: newTable(func(r model.TestResult) int64 { return r.ID }, func(r *model.TestResult, id int64) { r.ID = id }, model.TestResult.Clone),
		chat:        newTable(func(m model.ChatMessage) int64 { return m.ID }, func(m *model.ChatMessage, id int64) { m.ID = id }, nil),
		reminders:   newTable(func(r model.Reminder) int64 { return r.ID }, func(r *model.Reminder, id int64) { r.ID = id }, nil),
	}
	if snap != nil {
		s.documents.load(snap.Documents)
		s.studyGuides.load(snap.StudyGuides)
		s.mockTests.load(snap.MockTests)
		s.testResults.load(snap.TestResults)
		s.chat.load(snap.ChatMessages)
		s.reminders.load(snap.Reminders)
	}
	return s
}

// Documents

func (s *Store) ListDocuments(ctx context.Context) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents.list(), nil
}

func (s *Store) FindDocument(ctx context.Context, id int64) (*model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents.find(id)
}

func (s *Store) CreateDocument(ctx context.Context, doc model.Document) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documents.insert(doc), nil
}

func (s *Store) UpdateDocument(ctx context.Context, id int64, fn func(*model.Document)) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documents.update(id, fn)
}

func (s *Store) DeleteDocument(ctx context.Context, id int64) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.documents.remove(id)
	if removed == nil {
		return nil, nil
	}
	s.studyGuides.removeWhere(func(g model.StudyGuide) bool { return g.DocumentID == id })
	s.mockTests.removeWhere(func(t model.MockTest) bool { return t.DocumentID == id })
	return removed, nil
}

// Study guides

func (s *Store) ListStudyGuides(ctx context.Context) ([]model.StudyGuide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studyGuides.list(), nil
}

func (s *Store) CreateStudyGuide(ctx context.Context, guide model.StudyGuide) (*model.StudyGuide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.documents.has(guide.DocumentID) {
		return nil, repository.ErrNotFound
	}
	return s.studyGuides.insert(guide), nil
}

// Mock tests

func (s *Store) ListMockTests(ctx context.Context) ([]model.MockTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mockTests.list(), nil
}

func (s *Store) FindMockTest(ctx context.Context, id int64) (*model.MockTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mockTests.find(id)
}

func (s *Store) CreateMockTest(ctx context.Context, test model.MockTest) (*model.MockTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.documents.has(test.DocumentID) {
		return nil, repository.ErrNotFound
	}
	return s.mockTests.insert(test), nil
}

// Test results

func (s *Store) ListTestResults(ctx context.Context) ([]model.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.testResults.list(), nil
}

func (s *Store) CreateTestResult(ctx context.Context, result model.TestResult) (*model.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mockTests.has(result.MockTestID) {
		return nil, repository.ErrNotFound
	}
	return s.testResults.insert(result), nil
}

// Chat

func (s *Store) ListChatMessages(ctx context.Context) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chat.list(), nil
}

func (s *Store) AppendChatMessages(ctx context.Context, msgs ...model.ChatMessage) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *s.chat.insert(m))
	}
	return out, nil
}

// Reminders

func (s *Store) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminders.list(), nil
}

func (s *Store) CreateReminder(ctx context.Context, r model.Reminder) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.insert(r), nil
}

func (s *Store) UpdateReminder(ctx context.Context, id int64, patch model.ReminderPatch) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.update(id, patch.Apply)
}

func (s *Store) DeleteReminder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders.remove(id)
	return nil
}
