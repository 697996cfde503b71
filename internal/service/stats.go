package service

import (
	"context"
	"math"
	"time"

	"studyaid/internal/model"
)

func (s *Service) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	ctx, span, err := s.start(ctx, "DashboardStats", s.latency.Stats)
	defer span.End()
	if err != nil {
		return nil, err
	}
	docs, err := s.repo.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	guides, err := s.repo.ListStudyGuides(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.repo.ListTestResults(ctx)
	if err != nil {
		return nil, err
	}
	reminders, err := s.repo.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(len(docs), len(guides), results, reminders, s.clock.Now())
	return &stats, nil
}

// ComputeStats aggregates the dashboard counters. AverageScore is the rounded
// mean of per-result percentages, 0 when there are no results.
func ComputeStats(documents, guides int, results []model.TestResult, reminders []model.Reminder, now time.Time) model.DashboardStats {
	stats := model.DashboardStats{
		DocumentsCount:   documents,
		StudyGuidesCount: guides,
		TestsCompleted:   len(results),
	}
	for _, r := range reminders {
		if r.Pending(now) {
			stats.PendingReminders++
		}
	}
	if len(results) > 0 {
		var sum float64
		for _, r := range results {
			sum += r.Percent()
		}
		stats.AverageScore = int(math.Round(sum / float64(len(results))))
	}
	return stats
}
