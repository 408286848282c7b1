package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "mcq"
	TrueFalse      QuestionType = "truefalse"
	FreeText       QuestionType = "text"
)

// Question 测验内的题目，不单独落表，整组以JSON列存在测验上
// swagger:model Question
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"questionText"`
	Options       []string     `json:"options,omitempty"` // 仅mcq使用
	CorrectAnswer string       `json:"correctAnswer"`
	Points        int          `json:"points"`
}

// QuestionList 以JSON列整体读写，保持题目在录入时的顺序
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported question list column type %T", value)
	}
}

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	Title       string       `gorm:"size:100;not null" json:"title"`
	Description string       `gorm:"size:500" json:"description"`
	Questions   QuestionList `gorm:"type:json" json:"questions"`
	CreatedBy   uint         `gorm:"index;type:bigint unsigned" json:"createdBy"`
	Creator     *Admin       `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
