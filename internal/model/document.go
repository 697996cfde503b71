package model

import "time"

// Document represents an uploaded study material.
// ExtractedText is only populated once the background processing step has run.
type Document struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"ownerId"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"originalName"`
	FileType      string    `json:"fileType"`
	FileSize      int64     `json:"fileSize"`
	StoragePath   string    `json:"-"`
	ExtractedText string    `json:"extractedText,omitempty"`
	UploadedAt    time.Time `json:"uploadedAt"`
	Processed     bool      `json:"processed"`
}

// StudyGuide is a generated summary of a Document.
type StudyGuide struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"ownerId"`
	DocumentID int64     `json:"documentId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	KeyPoints  []string  `json:"keyPoints"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Clone returns a copy that shares no slices with g.
func (g StudyGuide) Clone() StudyGuide {
	g.KeyPoints = append([]string(nil), g.KeyPoints...)
	return g
}
