package model

// DashboardStats aggregates counts shown on the dashboard.
type DashboardStats struct {
	DocumentsCount   int `json:"documentsCount"`
	StudyGuidesCount int `json:"studyGuidesCount"`
	TestsCompleted   int `json:"testsCompleted"`
	PendingReminders int `json:"pendingReminders"`
	AverageScore     int `json:"averageScore"`
}
