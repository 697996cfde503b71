package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyaid/internal/model"
	"studyaid/internal/service"
	serviceMocks "studyaid/internal/service/mocks"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, _ = part.Write(content)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(map[string]Pinger{
			"redis": pingFunc(func(context.Context) error { return nil }),
		}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(map[string]Pinger{
			"redis": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
		}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		assert.Equal(t, "redis unavailable", body.Error.Message)
	})

	t.Run("no dependencies", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(nil))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := newApp()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Get("/documents", ListDocuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		docs := []model.Document{{ID: 1, OriginalName: "Algebra.pdf", Processed: true}}
		mockSvc.On("ListDocuments", mock.Anything).Return(docs, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Document
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, docs[0].ID, result[0].ID)
		assert.Empty(t, result[0].StoragePath)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListDocuments", mock.Anything).Return(nil, errors.New("boom")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadDocument(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

	t.Run("success", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudyService)
		app := newApp()
		app.Post("/upload", UploadDocument(mockSvc, DefaultUploadPolicy(1024)))

		var received []byte
		matches := mock.MatchedBy(func(in service.UploadInput) bool {
			if b, _ := io.ReadAll(in.Reader); len(b) > 0 {
				received = b
			}
			return in.Filename == "notes.pdf" && in.ContentType == "application/pdf" && in.Size == int64(len(pdf))
		})
		expected := &model.Document{ID: 3, OriginalName: "notes.pdf", FileType: "application/pdf"}
		mockSvc.On("UploadDocument", mock.Anything, matches).Return(expected, nil).Once()

		resp, err := app.Test(multipartRequest(t, "/upload", "notes.pdf", pdf))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Document
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, int64(3), result.ID)
		assert.False(t, result.Processed)
		assert.Equal(t, pdf, received)
		mockSvc.AssertExpectations(t)
	})

	t.Run("plain text", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudyService)
		app := newApp()
		app.Post("/upload", UploadDocument(mockSvc, DefaultUploadPolicy(1024)))

		matches := mock.MatchedBy(func(in service.UploadInput) bool { return in.ContentType == "text/plain" })
		mockSvc.On("UploadDocument", mock.Anything, matches).Return(&model.Document{ID: 4}, nil).Once()

		resp, err := app.Test(multipartRequest(t, "/upload", "summary.TXT", []byte("chapter one: limits and continuity")))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		filename string
		content  []byte
		status   int
		code     string
	}{
		{name: "too large", filename: "big.txt", content: bytes.Repeat([]byte("a"), 2048), status: http.StatusRequestEntityTooLarge, code: "FILE_TOO_LARGE"},
		{name: "bad extension", filename: "setup.exe", content: []byte("MZ"), status: http.StatusUnsupportedMediaType, code: "UNSUPPORTED_FILE_TYPE"},
		{name: "no extension", filename: "README", content: []byte("text"), status: http.StatusUnsupportedMediaType, code: "UNSUPPORTED_FILE_TYPE"},
		{name: "content mismatch", filename: "archive.pdf", content: append([]byte("PK\x03\x04"), make([]byte, 64)...), status: http.StatusUnsupportedMediaType, code: "UNSUPPORTED_FILE_TYPE"},
		{name: "empty", filename: "empty.txt", content: nil, status: http.StatusBadRequest, code: "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockStudyService)
			app := newApp()
			app.Post("/upload", UploadDocument(mockSvc, DefaultUploadPolicy(1024)))

			resp, err := app.Test(multipartRequest(t, "/upload", tt.filename, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
			mockSvc.AssertNotCalled(t, "UploadDocument", mock.Anything, mock.Anything)
		})
	}

	t.Run("no file", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudyService)
		app := newApp()
		app.Post("/upload", UploadDocument(mockSvc, DefaultUploadPolicy(1024)))

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/upload", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudyService)
		app := newApp()
		app.Post("/upload", UploadDocument(mockSvc, DefaultUploadPolicy(1024)))
		mockSvc.On("UploadDocument", mock.Anything, mock.Anything).Return(nil, errors.New("upload to storage: timeout")).Once()

		resp, err := app.Test(multipartRequest(t, "/upload", "notes.pdf", pdf))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Delete("/documents/:id", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("DeleteDocument", mock.Anything, int64(2)).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	for _, raw := range []string{"abc", "0", "-4"} {
		t.Run("invalid id "+raw, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/"+raw, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		})
	}

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("DeleteDocument", mock.Anything, int64(5)).Return(errors.New("delete storage: denied")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGenerateStudyGuide(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Post("/study-guides", GenerateStudyGuide(mockSvc))

	t.Run("success", func(t *testing.T) {
		guide := &model.StudyGuide{ID: 3, DocumentID: 1, Title: "Study Guide: Algebra.pdf"}
		mockSvc.On("GenerateStudyGuide", mock.Anything, service.GenerateStudyGuideInput{DocumentID: 1}).Return(guide, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/study-guides", `{"documentId":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.StudyGuide
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, guide.Title, result.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("GenerateStudyGuide", mock.Anything, service.GenerateStudyGuideInput{DocumentID: 99}).
			Return(nil, &service.NotFoundError{Entity: "document", ID: 99}).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/study-guides", `{"documentId":99}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "document 99 not found", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/study-guides", `{"documentId":`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestGenerateMockTest(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Post("/mock-tests", GenerateMockTest(mockSvc))

	in := service.GenerateMockTestInput{DocumentID: 1, Title: "Midterm", QuestionCount: 5}
	mockSvc.On("GenerateMockTest", mock.Anything, in).Return(&model.MockTest{ID: 2, Title: "Midterm"}, nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/mock-tests", `{"documentId":1,"title":"Midterm","questionCount":5}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestSubmitTestResult(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Post("/test-results", SubmitTestResult(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.SubmitTestResultInput{MockTestID: 1, Answers: []int{1, 0}}
		res := &model.TestResult{ID: 2, MockTestID: 1, Score: 1, TotalQuestions: 2, Answers: []int{1, 0}}
		mockSvc.On("SubmitTestResult", mock.Anything, in).Return(res, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/test-results", `{"mockTestId":1,"answers":[1,0]}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.TestResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 1, result.Score)
		assert.Equal(t, 2, result.TotalQuestions)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown test", func(t *testing.T) {
		mockSvc.On("SubmitTestResult", mock.Anything, mock.Anything).
			Return(nil, &service.NotFoundError{Entity: "mock test", ID: 8}).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/test-results", `{"mockTestId":8,"answers":[]}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestSendChatMessage(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Post("/chat", SendChatMessage(mockSvc))

	t.Run("success", func(t *testing.T) {
		pair := []model.ChatMessage{
			{ID: 3, Message: "help", IsFromUser: true},
			{ID: 4, Message: "Sure.", IsFromUser: false},
		}
		mockSvc.On("SendChatMessage", mock.Anything, "help").Return(pair, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/chat", `{"message":"help"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result []model.ChatMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result, 2)
		assert.True(t, result[0].IsFromUser)
		assert.False(t, result[1].IsFromUser)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty message", func(t *testing.T) {
		mockSvc.On("SendChatMessage", mock.Anything, "").
			Return(nil, fmt.Errorf("%w: message is required", service.ErrInvalidInput)).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/chat", `{"message":""}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestReminderHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Post("/reminders", CreateReminder(mockSvc))
	app.Put("/reminders/:id", UpdateReminder(mockSvc))
	app.Delete("/reminders/:id", DeleteReminder(mockSvc))

	due := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		in := model.ReminderInput{Title: "Flashcards", DueDate: due}
		mockSvc.On("CreateReminder", mock.Anything, in).Return(&model.Reminder{ID: 3, Title: "Flashcards", DueDate: due}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/reminders", `{"title":"Flashcards","dueDate":"2024-02-01T09:00:00Z"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("partial update", func(t *testing.T) {
		isCompletedOnly := mock.MatchedBy(func(p model.ReminderPatch) bool {
			return p.Completed != nil && *p.Completed && p.Title == nil && p.Description == nil && p.DueDate == nil
		})
		mockSvc.On("UpdateReminder", mock.Anything, int64(1), isCompletedOnly).
			Return(&model.Reminder{ID: 1, Title: "Math Quiz Tomorrow", Completed: true}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPut, "/reminders/1", `{"completed":true}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Reminder
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Completed)
		mockSvc.AssertExpectations(t)
	})

	t.Run("update missing", func(t *testing.T) {
		mockSvc.On("UpdateReminder", mock.Anything, int64(42), mock.Anything).
			Return(nil, &service.NotFoundError{Entity: "reminder", ID: 42}).Once()

		resp, err := app.Test(jsonRequest(http.MethodPut, "/reminders/42", `{"title":"x"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("update invalid id", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/reminders/x", `{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("DeleteReminder", mock.Anything, int64(2)).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/reminders/2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDashboardStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyService)
	app := newApp()
	app.Get("/dashboard/stats", DashboardStats(mockSvc))

	stats := &model.DashboardStats{DocumentsCount: 2, StudyGuidesCount: 2, TestsCompleted: 1, PendingReminders: 2, AverageScore: 80}
	mockSvc.On("DashboardStats", mock.Anything).Return(stats, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 80, result["averageScore"])
	assert.Equal(t, 2, result["pendingReminders"])
	mockSvc.AssertExpectations(t)
}

type denyAll struct{}

func (denyAll) Allow(context.Context, string) bool { return false }

func TestRouting(t *testing.T) {
	app := newApp()
	mockSvc := new(serviceMocks.MockStudyService)
	RegisterRoutes(app, mockSvc, RouteOptions{Upload: DefaultUploadPolicy(1024), Limiter: denyAll{}})

	t.Run("not found route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("generation is rate limited", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/study-guides", `{"documentId":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "RATE_LIMITED", decodeError(t, resp).Error.Code)
		mockSvc.AssertNotCalled(t, "GenerateStudyGuide", mock.Anything, mock.Anything)
	})

	t.Run("reads are not rate limited", func(t *testing.T) {
		mockSvc.On("ListReminders", mock.Anything).Return([]model.Reminder{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reminders", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("patch updates reminders", func(t *testing.T) {
		mockSvc.On("UpdateReminder", mock.Anything, int64(1), mock.Anything).Return(&model.Reminder{ID: 1}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/reminders/1", `{"completed":false}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
