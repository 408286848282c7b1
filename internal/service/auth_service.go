package service

import (
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	AdminRepo *repository.AdminRepository
	Cfg       *config.Config
}

func NewAuthService(adminRepo *repository.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		AdminRepo: adminRepo,
		Cfg:       cfg,
	}
}

// Register 注册成功后直接签发令牌，省去注册后再登录一步
func (s *AuthService) Register(admin *model.Admin) (string, error) {
	_, err := s.AdminRepo.FindByEmail(admin.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	admin.Password = string(hashedPassword)

	if err := s.AdminRepo.Create(admin); err != nil {
		return "", err
	}

	return util.GenerateJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// Login 查无此邮箱和密码不匹配返回同一个错误，不泄露账号是否存在
func (s *AuthService) Login(email, password string) (*model.Admin, string, error) {
	admin, err := s.AdminRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

func (s *AuthService) CurrentAdmin(c *gin.Context) (*model.Admin, error) {
	claims := util.GetAdminFromContext(c)
	if claims == nil {
		return nil, util.ErrInvalidCredentials
	}

	admin, err := s.AdminRepo.FindByID(claims.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
