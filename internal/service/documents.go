package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"studyaid/internal/model"
	"studyaid/internal/storage"
)

// UploadInput describes a file handed to UploadDocument. Size is -1 when unknown.
type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

func (s *Service) ListDocuments(ctx context.Context) ([]model.Document, error) {
	ctx, span, err := s.start(ctx, "ListDocuments", s.latency.List)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.ListDocuments(ctx)
}

// UploadDocument stores the content under documents/<uuid><ext>, records it, then schedules processing.
// The storage object is removed again if the record cannot be saved.
func (s *Service) UploadDocument(ctx context.Context, in UploadInput) (*model.Document, error) {
	if in.Reader == nil {
		return nil, ErrReaderNil
	}
	if strings.TrimSpace(in.Filename) == "" {
		return nil, invalid("filename is required")
	}
	ctx, span, err := s.start(ctx, "UploadDocument", s.latency.Upload)
	defer span.End()
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	genName := uuid.New().String() + ext
	key := path.Join("documents", genName)

	objInfo, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.CreateDocument(ctx, model.Document{
		OwnerID:      s.ownerID,
		Filename:     genName,
		OriginalName: in.Filename,
		FileType:     in.ContentType,
		FileSize:     objInfo.Size,
		StoragePath:  objInfo.Key,
		UploadedAt:   s.clock.Now(),
	})
	if err != nil {
		span.RecordError(err)
		if delErr := s.store.Delete(ctx, objInfo.Key); delErr != nil {
			return nil, fmt.Errorf("save document failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("save document failed: %w", err)
	}
	span.SetAttributes(attribute.Int64("document.id", stored.ID))

	s.scheduleProcessing(stored.ID)
	s.logger.Info("document uploaded",
		"event", "document_uploaded",
		"document_id", stored.ID,
		"original_name", stored.OriginalName,
		"size", stored.FileSize,
	)
	return stored, nil
}

// DeleteDocument cancels pending processing, removes the stored object and then the record.
func (s *Service) DeleteDocument(ctx context.Context, id int64) error {
	ctx, span, err := s.start(ctx, "DeleteDocument", s.latency.Delete)
	defer span.End()
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int64("document.id", id))

	s.cancelProcessing(id)

	doc, err := s.repo.FindDocument(ctx, id)
	if err != nil {
		if isRepoNotFound(err) {
			return nil
		}
		return err
	}
	// Seeded documents were never uploaded and have no object.
	if doc.StoragePath != "" {
		if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
			span.RecordError(err)
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	_, err = s.repo.DeleteDocument(ctx, id)
	return err
}

func (s *Service) scheduleProcessing(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending[id] = s.clock.AfterFunc(s.latency.Processing, func() { s.process(id) })
}

func (s *Service) cancelProcessing(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.pending[id]; ok {
		t.Stop()
		delete(s.pending, id)
	}
}

// process marks the document processed and derives its guide and quiz.
// It runs detached from the request that scheduled it.
func (s *Service) process(id int64) {
	s.mu.Lock()
	if _, ok := s.pending[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, id)
	s.mu.Unlock()

	ctx, span := s.tracer.Start(context.Background(), "service.ProcessDocument")
	defer span.End()
	span.SetAttributes(attribute.Int64("document.id", id))

	doc, err := s.repo.UpdateDocument(ctx, id, func(d *model.Document) {
		d.Processed = true
		d.ExtractedText = extractedText(d.OriginalName)
	})
	if err != nil {
		s.skipProcessing(id, err)
		return
	}
	now := s.clock.Now()
	guide, err := s.repo.CreateStudyGuide(ctx, processedGuide(*doc, s.ownerID, now))
	if err != nil {
		s.skipProcessing(id, err)
		return
	}
	test, err := s.repo.CreateMockTest(ctx, processedQuiz(*doc, s.ownerID, now))
	if err != nil {
		s.skipProcessing(id, err)
		return
	}
	s.logger.Info("document processed",
		"event", "document_processed",
		"document_id", id,
		"study_guide_id", guide.ID,
		"mock_test_id", test.ID,
	)
}

func (s *Service) skipProcessing(id int64, err error) {
	s.logger.Warn("processing skipped",
		"event", "processing_skipped",
		"document_id", id,
		"error", err,
	)
}
