package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService    *service.QuizService
	ScoringService *service.ScoringService
}

func NewQuizController(quizService *service.QuizService, scoringService *service.ScoringService) *QuizController {
	return &QuizController{
		QuizService:    quizService,
		ScoringService: scoringService,
	}
}

// List godoc
// @Summary 公开测验列表
// @Description 按创建时间倒序返回所有测验摘要，不含题目内容
// @Tags 测验
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.QuizSummary} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	summaries, err := c.QuizService.ListPublic(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summaries)
}

// Get godoc
// @Summary 测验详情
// @Tags 测验
// @Produce  json
// @Param   id path string true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz} "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// MyQuizzes godoc
// @Summary 我创建的测验
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /quizzes/admin/my-quizzes [get]
func (c *QuizController) MyQuizzes(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.ListByOwner(claims.AdminID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Create godoc
// @Summary 创建测验
// @Description 标题必填，至少一道题，mcq的正确答案必须在选项内
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.QuizCreateRequest true "测验内容"
// @Success 201 {object} util.Response{data=model.Quiz} "创建成功"
// @Failure 400 {object} util.Response "校验失败"
// @Failure 401 {object} util.Response "未授权"
// @Router /quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(claims.AdminID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, quiz)
}

// Update godoc
// @Summary 更新测验
// @Description 只允许更新 title/description/questions，只有所有者可以操作。
// @Description 他人的测验与不存在的测验一律返回404
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "测验ID"
// @Param   body body service.QuizUpdateRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Quiz} "成功"
// @Failure 400 {object} util.Response "校验失败"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(ctx.Param("id"), claims.AdminID, req)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, quiz)
}

// Delete godoc
// @Summary 删除测验
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "测验ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.Delete(ctx.Param("id"), claims.AdminID); err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Quiz deleted successfully"})
}

// SubmitRequest 答卷，question id 到答案的映射
// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers map[string]string `json:"answers"`
}

// Submit godoc
// @Summary 提交答卷并评分
// @Description 同步评分，结果不落库
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   id path string true "测验ID"
// @Param   body body SubmitRequest true "答案"
// @Success 200 {object} util.Response{data=service.ScoreResult} "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	result := c.ScoringService.Score(quiz.Questions, req.Answers)
	monitoring.QuizSubmissionCounter.WithLabelValues(quiz.ID).Inc()

	util.Success(ctx, result)
}
