package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"studyaid/internal/model"
)

// SubmitTestResultInput is one attempt at a mock test. Answers[i] is the chosen option of question i.
type SubmitTestResultInput struct {
	MockTestID int64 `json:"mockTestId"`
	Answers    []int `json:"answers"`
}

// Score counts answers matching the correct option and returns the answers
// normalized to one entry per question. Missing or out-of-range entries become
// model.Unanswered and surplus entries are dropped.
func Score(questions []model.Question, answers []int) (int, []int) {
	score := 0
	normalized := make([]int, len(questions))
	for i, q := range questions {
		a := model.Unanswered
		if i < len(answers) && answers[i] >= 0 && answers[i] < len(q.Options) {
			a = answers[i]
		}
		normalized[i] = a
		if a != model.Unanswered && a == q.CorrectAnswer {
			score++
		}
	}
	return score, normalized
}

func (s *Service) SubmitTestResult(ctx context.Context, in SubmitTestResultInput) (*model.TestResult, error) {
	ctx, span, err := s.start(ctx, "SubmitTestResult", s.latency.Submit)
	defer span.End()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("mock_test.id", in.MockTestID))

	test, err := s.repo.FindMockTest(ctx, in.MockTestID)
	if err != nil {
		return nil, notFound(err, "mock test", in.MockTestID)
	}
	score, answers := Score(test.Questions, in.Answers)
	stored, err := s.repo.CreateTestResult(ctx, model.TestResult{
		OwnerID:        s.ownerID,
		MockTestID:     test.ID,
		Score:          score,
		TotalQuestions: len(test.Questions),
		Answers:        answers,
		CompletedAt:    s.clock.Now(),
	})
	if err != nil {
		return nil, notFound(err, "mock test", in.MockTestID)
	}
	return stored, nil
}

func (s *Service) ListTestResults(ctx context.Context) ([]model.TestResult, error) {
	ctx, span, err := s.start(ctx, "ListTestResults", s.latency.List)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.ListTestResults(ctx)
}
