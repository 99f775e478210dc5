package services

import (
	"math"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ScoreResult struct {
	Score      int  `json:"score"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// Score grades a submission against the question set. answers[i] is the
// selected option index for question i, or nil when unanswered. Unanswered
// and incorrect both contribute zero; there is no negative marking.
func (s *ScoringService) Score(questions []models.Question, answers []*int, passingMarks int) ScoreResult {
	total := 0
	score := 0
	for i, q := range questions {
		total += q.Marks
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == q.CorrectOption {
			score += q.Marks
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(score) / float64(total) * 100))
	}

	return ScoreResult{
		Score:      score,
		Percentage: pct,
		Passed:     score >= passingMarks,
	}
}
