package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ssss/backend/config"
	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/pkg/jwt"
)

// ── 测试辅助 ──

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-0123456789",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func setupTestAuthService(t *testing.T) (AuthService, *testMocks) {
	t.Helper()
	repo, mocks := newTestRepo()
	cfg := testAuthConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, mocks
}

func seedUser(t *testing.T, mocks *testMocks, email, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	user := &model.User{
		FullName:     "测试用户",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := mocks.user.Create(context.Background(), user); err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	user := seedUser(t, mocks, "admin@ssss.edu", "Admin@123", model.RoleAdmin)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@ssss.edu",
		Password: "Admin@123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("期望返回 token 对")
	}
	if resp.User.UserID != user.UserID {
		t.Errorf("UserID 不匹配: expected %s, got %s", user.UserID, resp.User.UserID)
	}
	if resp.User.Role != model.RoleAdmin {
		t.Errorf("Role 不匹配: got %s", resp.User.Role)
	}
	if resp.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("ExpiresIn 不匹配: got %d", resp.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	seedUser(t, mocks, "admin@ssss.edu", "Admin@123", model.RoleAdmin)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@ssss.edu",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@ssss.edu",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 ErrInvalidCredentials, got %v", err)
	}
}

// ── RefreshToken ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	seedUser(t, mocks, "teacher@ssss.edu", "Teach@123", model.RoleTeacher)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@ssss.edu",
		Password: "Teach@123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("RefreshToken 失败: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("期望返回新的 AccessToken")
	}
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	seedUser(t, mocks, "teacher@ssss.edu", "Teach@123", model.RoleTeacher)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@ssss.edu",
		Password: "Teach@123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	// AccessToken 不能当作刷新令牌使用
	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Fatalf("期望 ErrInvalidRefresh, got %v", err)
	}
}

// ── ChangePassword ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	user := seedUser(t, mocks, "student@ssss.edu", "Old@123", model.RoleStudent)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "Old@123",
		NewPassword: "New@456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 失败: %v", err)
	}

	// 旧密码失效，新密码可登录
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@ssss.edu",
		Password: "Old@123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望旧密码失效, got %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@ssss.edu",
		Password: "New@456",
	}); err != nil {
		t.Errorf("新密码登录失败: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	user := seedUser(t, mocks, "student@ssss.edu", "Old@123", model.RoleStudent)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "New@456",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Fatalf("期望 ErrWrongOldPassword, got %v", err)
	}
}

// ── Me ──

func TestAuthService_Me(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	user := seedUser(t, mocks, "admin@ssss.edu", "Admin@123", model.RoleAdmin)

	resp, err := svc.Me(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("Me 失败: %v", err)
	}
	if resp.Email != "admin@ssss.edu" {
		t.Errorf("Email 不匹配: got %s", resp.Email)
	}

	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("期望 ErrUserNotFound, got %v", err)
	}
}
