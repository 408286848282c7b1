package service

import (
	"errors"
	"testing"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: 24 * time.Hour,
		},
	}
	return NewAuthService(repository.NewAdminRepository(db), cfg)
}

func TestRegisterThenLogin(t *testing.T) {
	s := newAuthService(t)

	admin := &model.Admin{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
	token, err := s.Register(admin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token on registration")
	}
	if admin.Password == "secret1" {
		t.Fatalf("password stored in plaintext")
	}

	loggedIn, loginToken, err := s.Login("alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginToken == "" {
		t.Fatalf("expected a token on login")
	}
	if loggedIn.ID != admin.ID {
		t.Fatalf("login returned a different admin: %d vs %d", loggedIn.ID, admin.ID)
	}

	claims, err := util.ParseJWT(loginToken, s.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Fatalf("token carries wrong admin id: %d", claims.AdminID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(t)

	first := &model.Admin{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
	if _, err := s.Register(first); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	second := &model.Admin{Name: "Impostor", Email: "alice@example.com", Password: "secret2"}
	_, err := s.Register(second)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}

	// 登录仍然使用原账号的密码
	admin, _, err := s.Login("alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("original credentials stopped working: %v", err)
	}
	if admin.Name != "Alice" {
		t.Fatalf("expected original admin, got %q", admin.Name)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	s := newAuthService(t)

	admin := &model.Admin{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
	if _, err := s.Register(admin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// 密码错误和账号不存在返回同一个错误
	if _, _, err := s.Login("alice@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := s.Login("nobody@example.com", "secret1"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
