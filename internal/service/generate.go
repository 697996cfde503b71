package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"studyaid/internal/model"
)

// GenerateStudyGuideInput requests a guide for an existing document.
// An empty Title falls back to "Study Guide: <original name>".
type GenerateStudyGuideInput struct {
	DocumentID int64  `json:"documentId"`
	Title      string `json:"title,omitempty"`
}

// GenerateMockTestInput requests a practice test for an existing document.
// QuestionCount <= 0 selects DefaultQuestionCount; larger values are capped at MaxQuestionCount.
type GenerateMockTestInput struct {
	DocumentID    int64  `json:"documentId"`
	Title         string `json:"title,omitempty"`
	QuestionCount int    `json:"questionCount,omitempty"`
}

func (s *Service) ListStudyGuides(ctx context.Context) ([]model.StudyGuide, error) {
	ctx, span, err := s.start(ctx, "ListStudyGuides", s.latency.List)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.ListStudyGuides(ctx)
}

func (s *Service) GenerateStudyGuide(ctx context.Context, in GenerateStudyGuideInput) (*model.StudyGuide, error) {
	ctx, span, err := s.start(ctx, "GenerateStudyGuide", s.latency.Generate)
	defer span.End()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("document.id", in.DocumentID))

	doc, err := s.repo.FindDocument(ctx, in.DocumentID)
	if err != nil {
		return nil, notFound(err, "document", in.DocumentID)
	}
	guide := generatedGuide(*doc, strings.TrimSpace(in.Title), s.ownerID, s.clock.Now())
	stored, err := s.repo.CreateStudyGuide(ctx, guide)
	if err != nil {
		return nil, notFound(err, "document", in.DocumentID)
	}
	return stored, nil
}

func (s *Service) ListMockTests(ctx context.Context) ([]model.MockTest, error) {
	ctx, span, err := s.start(ctx, "ListMockTests", s.latency.List)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.ListMockTests(ctx)
}

func (s *Service) GenerateMockTest(ctx context.Context, in GenerateMockTestInput) (*model.MockTest, error) {
	ctx, span, err := s.start(ctx, "GenerateMockTest", s.latency.Generate)
	defer span.End()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("document.id", in.DocumentID))

	doc, err := s.repo.FindDocument(ctx, in.DocumentID)
	if err != nil {
		return nil, notFound(err, "document", in.DocumentID)
	}
	count := in.QuestionCount
	switch {
	case count <= 0:
		count = DefaultQuestionCount
	case count > MaxQuestionCount:
		count = MaxQuestionCount
	}
	test := practiceTest(*doc, strings.TrimSpace(in.Title), count, s.ownerID, s.clock.Now())
	stored, err := s.repo.CreateMockTest(ctx, test)
	if err != nil {
		return nil, notFound(err, "document", in.DocumentID)
	}
	return stored, nil
}
