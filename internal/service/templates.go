package service

import (
	"fmt"
	"time"

	"studyaid/internal/model"
)

const (
	DefaultQuestionCount = 2
	MaxQuestionCount     = 20
)

func extractedText(name string) string {
	return fmt.Sprintf("Extracted text from %s. This would contain the actual content of the uploaded document.", name)
}

// processedGuide is the guide derived automatically once an upload is processed.
func processedGuide(doc model.Document, ownerID int64, now time.Time) model.StudyGuide {
	name := doc.OriginalName
	return model.StudyGuide{
		OwnerID:    ownerID,
		DocumentID: doc.ID,
		Title:      "Study Guide: " + name,
		Content: fmt.Sprintf("# Study Guide for %s\n\n## Summary\nThis guide covers the main concepts from your uploaded document.\n\n"+
			"## Key Points\n- Important concept 1\n- Important concept 2\n- Important concept 3", name),
		Summary:   "AI-generated study guide for " + name,
		KeyPoints: []string{"Key concept from document", "Important formula or definition", "Practice recommendation"},
		CreatedAt: now,
	}
}

func processedQuiz(doc model.Document, ownerID int64, now time.Time) model.MockTest {
	name := doc.OriginalName
	return model.MockTest{
		OwnerID:    ownerID,
		DocumentID: doc.ID,
		Title:      "Quiz: " + name,
		Questions: []model.Question{{
			Question:      fmt.Sprintf("Based on %s, what is the main concept discussed?", name),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
			Explanation:   "This is the correct answer based on the document content.",
		}},
		CreatedAt: now,
	}
}

func generatedGuide(doc model.Document, title string, ownerID int64, now time.Time) model.StudyGuide {
	name := doc.OriginalName
	if title == "" {
		title = "Study Guide: " + name
	}
	return model.StudyGuide{
		OwnerID:    ownerID,
		DocumentID: doc.ID,
		Title:      title,
		Content:    fmt.Sprintf("# Study Guide\n\n## Overview\nAI-generated content based on %s\n\n## Key Concepts\n- Concept 1\n- Concept 2\n- Concept 3", name),
		Summary:    "Comprehensive study guide for " + name,
		KeyPoints:  []string{"Important point 1", "Important point 2", "Important point 3"},
		CreatedAt:  now,
	}
}

var practiceQuestions = []model.Question{
	{
		Question:      "Sample question based on the document content?",
		Options:       []string{"Answer A", "Answer B", "Answer C", "Answer D"},
		CorrectAnswer: 0,
		Explanation:   "This is why this answer is correct.",
	},
	{
		Question:      "Another question to test understanding?",
		Options:       []string{"Option 1", "Option 2", "Option 3", "Option 4"},
		CorrectAnswer: 2,
		Explanation:   "Detailed explanation of the correct answer.",
	},
	{
		Question:      "Which statement best summarizes the main idea of the material?",
		Options:       []string{"Statement A", "Statement B", "Statement C", "Statement D"},
		CorrectAnswer: 1,
		Explanation:   "This statement captures the central idea of the document.",
	},
	{
		Question:      "Which detail from the material supports its central argument?",
		Options:       []string{"Detail A", "Detail B", "Detail C", "Detail D"},
		CorrectAnswer: 3,
		Explanation:   "This detail is the strongest evidence given in the document.",
	},
}

// practiceTest builds count questions by cycling through practiceQuestions.
// Repeats beyond the first pass are suffixed so every question text is distinct.
func practiceTest(doc model.Document, title string, count int, ownerID int64, now time.Time) model.MockTest {
	if title == "" {
		title = "Practice Test: " + doc.OriginalName
	}
	qs := make([]model.Question, count)
	for i := range qs {
		q := practiceQuestions[i%len(practiceQuestions)]
		q.Options = append([]string(nil), q.Options...)
		if round := i / len(practiceQuestions); round > 0 {
			q.Question = fmt.Sprintf("%s (variant %d)", q.Question, round+1)
		}
		qs[i] = q
	}
	return model.MockTest{
		OwnerID:    ownerID,
		DocumentID: doc.ID,
		Title:      title,
		Questions:  qs,
		CreatedAt:  now,
	}
}
