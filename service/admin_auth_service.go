package service

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/utils"
)

// AdminAuthService đăng nhập cho tài khoản chủ site duy nhất
type AdminAuthService struct {
	config config.AdminConfig
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(cfg config.AdminConfig) *AdminAuthService {
	return &AdminAuthService{config: cfg}
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents login response
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login authenticates the admin and returns a JWT token
func (s *AdminAuthService) Login(req LoginRequest) (*LoginResponse, error) {
	if err := firstError(
		utils.ValidateRequired("email", req.Email, "Email là bắt buộc"),
		utils.ValidateRequired("password", req.Password, "Mật khẩu là bắt buộc"),
	); err != nil {
		return nil, err
	}

	if s.config.PasswordHash == "" {
		return nil, goerrorkit.NewAuthError(401, "Tài khoản admin chưa được cấu hình")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	expected := strings.ToLower(strings.TrimSpace(s.config.Email))
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(expected)) == 1
	// Luôn kiểm tra bcrypt để thời gian phản hồi không lộ email đúng hay sai
	passwordMatches := utils.CheckPasswordHash(req.Password, s.config.PasswordHash)
	if !emailMatches || !passwordMatches {
		return nil, goerrorkit.NewAuthError(401, "Email hoặc mật khẩu không đúng")
	}

	token, expiresAt, err := utils.GenerateToken(expected, s.config.JWTSecret, s.config.JWTExpiry)
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo token")
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
