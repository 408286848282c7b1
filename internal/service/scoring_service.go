package service

import (
	"quizhub_backend/internal/model"
	"math"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// QuestionResult 单题判定明细
// swagger:model QuestionResult
type QuestionResult struct {
	QuestionID    string             `json:"questionId"`
	QuestionText  string             `json:"questionText"`
	Type          model.QuestionType `json:"type"`
	UserAnswer    string             `json:"userAnswer"`
	CorrectAnswer string             `json:"correctAnswer"`
	IsCorrect     bool               `json:"isCorrect"`
	Points        int                `json:"points"`
}

// swagger:model ScoreResult
type ScoreResult struct {
	Score       int              `json:"score"`
	TotalPoints int              `json:"totalPoints"`
	Percentage  int              `json:"percentage"`
	Results     []QuestionResult `json:"results"`
}

// Score 按存储顺序逐题判定。判定是精确的字符串相等，
// 不去空格不折叠大小写，缺失的答案一律判错。无副作用，提交不落库
func (s *ScoringService) Score(questions []model.Question, answers map[string]string) *ScoreResult {
	score := 0
	totalPoints := 0
	results := make([]QuestionResult, len(questions))

	for i, q := range questions {
		totalPoints += q.Points
		userAnswer := answers[q.ID]
		isCorrect := userAnswer == q.CorrectAnswer
		if isCorrect {
			score += q.Points
		}

		results[i] = QuestionResult{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			Type:          q.Type,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Points:        q.Points,
		}
	}

	// totalPoints 为0时百分比定义为0，避免除零
	percentage := 0
	if totalPoints > 0 {
		percentage = int(math.Round(float64(score) / float64(totalPoints) * 100))
	}

	return &ScoreResult{
		Score:       score,
		TotalPoints: totalPoints,
		Percentage:  percentage,
		Results:     results,
	}
}
