package mocks

import (
	"context"

	"studyaid/internal/model"
	"studyaid/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockStudyService struct {
	mock.Mock
}

var _ service.StudyService = (*MockStudyService)(nil)

func (m *MockStudyService) ListDocuments(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockStudyService) UploadDocument(ctx context.Context, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockStudyService) DeleteDocument(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudyService) ListStudyGuides(ctx context.Context) ([]model.StudyGuide, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudyGuide), args.Error(1)
}

func (m *MockStudyService) GenerateStudyGuide(ctx context.Context, in service.GenerateStudyGuideInput) (*model.StudyGuide, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyGuide), args.Error(1)
}

func (m *MockStudyService) ListMockTests(ctx context.Context) ([]model.MockTest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MockTest), args.Error(1)
}

func (m *MockStudyService) GenerateMockTest(ctx context.Context, in service.GenerateMockTestInput) (*model.MockTest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MockTest), args.Error(1)
}

func (m *MockStudyService) SubmitTestResult(ctx context.Context, in service.SubmitTestResultInput) (*model.TestResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestResult), args.Error(1)
}

func (m *MockStudyService) ListTestResults(ctx context.Context) ([]model.TestResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestResult), args.Error(1)
}

func (m *MockStudyService) ListChatMessages(ctx context.Context) ([]model.ChatMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockStudyService) SendChatMessage(ctx context.Context, message string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockStudyService) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reminder), args.Error(1)
}

func (m *MockStudyService) CreateReminder(ctx context.Context, in model.ReminderInput) (*model.Reminder, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reminder), args.Error(1)
}

func (m *MockStudyService) UpdateReminder(ctx context.Context, id int64, patch model.ReminderPatch) (*model.Reminder, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reminder), args.Error(1)
}

func (m *MockStudyService) DeleteReminder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudyService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}
