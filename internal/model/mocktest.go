package model

import "time"

// Unanswered marks a question the user skipped.
const Unanswered = -1

// Question is a single multiple-choice item. CorrectAnswer indexes into Options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// MockTest is a generated quiz derived from a Document.
type MockTest struct {
	ID         int64      `json:"id"`
	OwnerID    int64      `json:"ownerId"`
	DocumentID int64      `json:"documentId"`
	Title      string     `json:"title"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of t.
func (t MockTest) Clone() MockTest {
	if t.Questions == nil {
		return t
	}
	qs := make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}
	t.Questions = qs
	return t
}

// TestResult is the scored outcome of one attempt at a MockTest.
type TestResult struct {
	ID             int64     `json:"id"`
	OwnerID        int64     `json:"ownerId"`
	MockTestID     int64     `json:"mockTestId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Answers        []int     `json:"answers"`
	CompletedAt    time.Time `json:"completedAt"`
}

// Clone returns a copy that shares no slices with r.
func (r TestResult) Clone() TestResult {
	r.Answers = append([]int(nil), r.Answers...)
	return r
}

// Percent returns the score as a percentage of the question count.
// A result without questions counts as 0%.
func (r TestResult) Percent() float64 {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions) * 100
}
