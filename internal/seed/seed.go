// Package seed loads the fixture records a fresh service starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"studyaid/internal/model"
	"studyaid/internal/repository/memory"
)

//go:embed seed.yaml
var defaultSeed []byte

type file struct {
	Documents    []document    `yaml:"documents"`
	StudyGuides  []studyGuide  `yaml:"studyGuides"`
	MockTests    []mockTest    `yaml:"mockTests"`
	TestResults  []testResult  `yaml:"testResults"`
	ChatMessages []chatMessage `yaml:"chatMessages"`
	Reminders    []reminder    `yaml:"reminders"`
}

type document struct {
	ID            int64     `yaml:"id"`
	Filename      string    `yaml:"filename"`
	OriginalName  string    `yaml:"originalName"`
	FileType      string    `yaml:"fileType"`
	FileSize      int64     `yaml:"fileSize"`
	ExtractedText string    `yaml:"extractedText"`
	UploadedAt    time.Time `yaml:"uploadedAt"`
}

type studyGuide struct {
	ID         int64     `yaml:"id"`
	DocumentID int64     `yaml:"documentId"`
	Title      string    `yaml:"title"`
	Content    string    `yaml:"content"`
	Summary    string    `yaml:"summary"`
	KeyPoints  []string  `yaml:"keyPoints"`
	CreatedAt  time.Time `yaml:"createdAt"`
}

type question struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correctAnswer"`
	Explanation   string   `yaml:"explanation"`
}

type mockTest struct {
	ID         int64      `yaml:"id"`
	DocumentID int64      `yaml:"documentId"`
	Title      string     `yaml:"title"`
	Questions  []question `yaml:"questions"`
	CreatedAt  time.Time  `yaml:"createdAt"`
}

type testResult struct {
	ID             int64     `yaml:"id"`
	MockTestID     int64     `yaml:"mockTestId"`
	Score          int       `yaml:"score"`
	TotalQuestions int       `yaml:"totalQuestions"`
	Answers        []int     `yaml:"answers"`
	CompletedAt    time.Time `yaml:"completedAt"`
}

type chatMessage struct {
	ID         int64     `yaml:"id"`
	Message    string    `yaml:"message"`
	IsFromUser bool      `yaml:"isFromUser"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// reminder due dates are relative to load time so seeded reminders stay pending.
type reminder struct {
	ID          int64         `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	DueIn       time.Duration `yaml:"dueIn"`
	Completed   bool          `yaml:"completed"`
	CreatedAt   time.Time     `yaml:"createdAt"`
}

// Default decodes the embedded fixtures.
func Default(now time.Time, ownerID int64) (*memory.Snapshot, error) {
	return Load(bytes.NewReader(defaultSeed), now, ownerID)
}

// LoadFile decodes fixtures from a YAML file on disk.
func LoadFile(path string, now time.Time, ownerID int64) (*memory.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(f, now, ownerID)
}

// Load decodes fixtures from r. Every record is assigned to ownerID;
// reminder due dates are computed from now.
func Load(r io.Reader, now time.Time, ownerID int64) (*memory.Snapshot, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	snap := &memory.Snapshot{}
	for _, d := range f.Documents {
		snap.Documents = append(snap.Documents, model.Document{
			ID:            d.ID,
			OwnerID:       ownerID,
			Filename:      d.Filename,
			OriginalName:  d.OriginalName,
			FileType:      d.FileType,
			FileSize:      d.FileSize,
			ExtractedText: d.ExtractedText,
			UploadedAt:    d.UploadedAt,
			Processed:     d.ExtractedText != "",
		})
	}
	for _, g := range f.StudyGuides {
		snap.StudyGuides = append(snap.StudyGuides, model.StudyGuide{
			ID:         g.ID,
			OwnerID:    ownerID,
			DocumentID: g.DocumentID,
			Title:      g.Title,
			Content:    g.Content,
			Summary:    g.Summary,
			KeyPoints:  g.KeyPoints,
			CreatedAt:  g.CreatedAt,
		})
	}
	for _, t := range f.MockTests {
		qs := make([]model.Question, 0, len(t.Questions))
		for _, q := range t.Questions {
			qs = append(qs, model.Question(q))
		}
		snap.MockTests = append(snap.MockTests, model.MockTest{
			ID:         t.ID,
			OwnerID:    ownerID,
			DocumentID: t.DocumentID,
			Title:      t.Title,
			Questions:  qs,
			CreatedAt:  t.CreatedAt,
		})
	}
	for _, r := range f.TestResults {
		snap.TestResults = append(snap.TestResults, model.TestResult{
			ID:             r.ID,
			OwnerID:        ownerID,
			MockTestID:     r.MockTestID,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
			Answers:        r.Answers,
			CompletedAt:    r.CompletedAt,
		})
	}
	for _, m := range f.ChatMessages {
		snap.ChatMessages = append(snap.ChatMessages, model.ChatMessage{
			ID:         m.ID,
			OwnerID:    ownerID,
			Message:    m.Message,
			IsFromUser: m.IsFromUser,
			Timestamp:  m.Timestamp,
		})
	}
	for _, r := range f.Reminders {
		snap.Reminders = append(snap.Reminders, model.Reminder{
			ID:          r.ID,
			OwnerID:     ownerID,
			Title:       r.Title,
			Description: r.Description,
			DueDate:     now.Add(r.DueIn),
			Completed:   r.Completed,
			CreatedAt:   r.CreatedAt,
		})
	}
	return snap, nil
}

func (f *file) validate() error {
	docs := make(map[int64]bool, len(f.Documents))
	for _, d := range f.Documents {
		if d.ID <= 0 {
			return fmt.Errorf("seed document %q: id must be positive", d.OriginalName)
		}
		docs[d.ID] = true
	}
	for _, g := range f.StudyGuides {
		if !docs[g.DocumentID] {
			return fmt.Errorf("seed study guide %d: unknown document %d", g.ID, g.DocumentID)
		}
	}
	tests := make(map[int64]bool, len(f.MockTests))
	for _, t := range f.MockTests {
		if !docs[t.DocumentID] {
			return fmt.Errorf("seed mock test %d: unknown document %d", t.ID, t.DocumentID)
		}
		for i, q := range t.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return fmt.Errorf("seed mock test %d question %d: correct answer out of range", t.ID, i)
			}
		}
		tests[t.ID] = true
	}
	for _, r := range f.TestResults {
		if !tests[r.MockTestID] {
			return fmt.Errorf("seed test result %d: unknown mock test %d", r.ID, r.MockTestID)
		}
	}
	return nil
}
