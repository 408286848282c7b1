package service

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	publicListCacheKey = "quizhub:quizzes:public"
	publicListCacheTTL = 5 * time.Minute

	maxTitleLength       = 100
	maxDescriptionLength = 500
)

type QuizService struct {
	Repo  *repository.QuizRepository
	Redis *redis.Client
}

func NewQuizService(repo *repository.QuizRepository, rdb *redis.Client) *QuizService {
	return &QuizService{Repo: repo, Redis: rdb}
}

type QuizCreateRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions" binding:"required"`
}

// QuizUpdateRequest 可更新字段白名单。未出现的字段保持原值，
// createdBy 等服务端控制字段不在白名单内，请求体带了也会被忽略
type QuizUpdateRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Questions   []model.Question `json:"questions"`
}

// QuizSummary 公开列表项，不携带题目内容（含正确答案），只给数量
type QuizSummary struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	QuestionCount int                `json:"questionCount"`
	Creator       *model.AdminPublic `json:"creator,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title must be at most %d characters", maxTitleLength)
	}
	return nil
}

func validateQuestions(questions []model.Question) error {
	if len(questions) == 0 {
		return errors.New("at least one question is required")
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("question %d: id is required", i+1)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %q", i+1, q.ID)
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.QuestionText) == "" {
			return fmt.Errorf("question %d: questionText is required", i+1)
		}
		if q.CorrectAnswer == "" {
			return fmt.Errorf("question %d: correctAnswer is required", i+1)
		}
		if q.Points < 0 {
			return fmt.Errorf("question %d: points must be at least 1", i+1)
		}

		switch q.Type {
		case model.MultipleChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %d: options are required for mcq", i+1)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("question %d: correctAnswer must be one of the options", i+1)
			}
		case model.TrueFalse:
			if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
				return fmt.Errorf("question %d: correctAnswer must be \"true\" or \"false\"", i+1)
			}
		case model.FreeText:
			// 正确答案非空即可
		default:
			return fmt.Errorf("question %d: unknown question type %q", i+1, q.Type)
		}
	}
	return nil
}

// normalizeQuestions 补默认分值
func normalizeQuestions(questions []model.Question) model.QuestionList {
	out := make(model.QuestionList, len(questions))
	copy(out, questions)
	for i := range out {
		if out[i].Points == 0 {
			out[i].Points = 1
		}
	}
	return out
}

// Create 创建者即所有者，不支持代建
func (s *QuizService) Create(adminID uint, req QuizCreateRequest) (*model.Quiz, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if len(req.Description) > maxDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters", maxDescriptionLength)
	}
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Questions:   normalizeQuestions(req.Questions),
		CreatedBy:   adminID,
	}

	if err := s.Repo.Create(quiz); err != nil {
		return nil, err
	}

	s.invalidatePublicList()
	return quiz, nil
}

func (s *QuizService) ListPublic(ctx context.Context) ([]QuizSummary, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, publicListCacheKey).Result(); err == nil {
			var summaries []QuizSummary
			if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
				return summaries, nil
			}
		}
	}

	quizzes, err := s.Repo.ListPublic()
	if err != nil {
		return nil, err
	}

	summaries := make([]QuizSummary, len(quizzes))
	for i, q := range quizzes {
		summaries[i] = QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			QuestionCount: len(q.Questions),
			CreatedAt:     q.CreatedAt,
		}
		if q.Creator != nil {
			public := q.Creator.Public()
			summaries[i].Creator = &public
		}
	}

	if s.Redis != nil {
		if data, err := json.Marshal(summaries); err == nil {
			if err := s.Redis.Set(ctx, publicListCacheKey, data, publicListCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache public quiz list", zap.Error(err))
			}
		}
	}

	return summaries, nil
}

func (s *QuizService) ListByOwner(adminID uint) ([]model.Quiz, error) {
	return s.Repo.ListByOwner(adminID)
}

func (s *QuizService) Get(id string) (*model.Quiz, error) {
	quiz, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

// Update 只接受白名单字段，归属校验折叠在查询里：
// 他人的测验和不存在的测验一样返回 ErrQuizNotFound
func (s *QuizService) Update(id string, adminID uint, req QuizUpdateRequest) (*model.Quiz, error) {
	quiz, err := s.Repo.FindByIDAndOwner(id, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		quiz.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if len(*req.Description) > maxDescriptionLength {
			return nil, fmt.Errorf("description must be at most %d characters", maxDescriptionLength)
		}
		quiz.Description = strings.TrimSpace(*req.Description)
	}
	if req.Questions != nil {
		if err := validateQuestions(req.Questions); err != nil {
			return nil, err
		}
		quiz.Questions = normalizeQuestions(req.Questions)
	}

	if err := s.Repo.Update(quiz); err != nil {
		return nil, err
	}

	s.invalidatePublicList()
	return quiz, nil
}

func (s *QuizService) Delete(id string, adminID uint) error {
	rows, err := s.Repo.DeleteByIDAndOwner(id, adminID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.ErrQuizNotFound
	}

	s.invalidatePublicList()
	return nil
}

func (s *QuizService) invalidatePublicList() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), publicListCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate public quiz list cache", zap.Error(err))
	}
}
