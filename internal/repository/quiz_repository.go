package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// ListPublic 全表读取，按创建时间倒序。数据集预期很小，不做分页
func (r *QuizRepository) ListPublic() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Creator").Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListByOwner(adminID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("created_by = ?", adminID).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Creator").Where("id = ?", id).First(&quiz).Error
	return &quiz, err
}

// FindByIDAndOwner 把归属校验折叠进查询条件：
// 测验不存在和测验属于他人对调用方不可区分，都返回 ErrRecordNotFound
func (r *QuizRepository) FindByIDAndOwner(id string, adminID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("id = ? AND created_by = ?", id, adminID).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

// DeleteByIDAndOwner 与 FindByIDAndOwner 同样的归属折叠规则
func (r *QuizRepository) DeleteByIDAndOwner(id string, adminID uint) (int64, error) {
	result := r.DB.Where("id = ? AND created_by = ?", id, adminID).Delete(&model.Quiz{})
	return result.RowsAffected, result.Error
}
