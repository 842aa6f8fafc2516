package adminauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-NailStudio/internal/service/adminauth/models"
)

const (
	adminSubject = "admin"
	tokenIssuer  = "nail-studio"
)

// Claims данные токена администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service вход в админку по одному общему паролю
type Service struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	logger       Logger
}

// HashPassword bcrypt хэш для пароля, заданного открытым текстом
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: HashPassword: %v", ErrInternal, err)
	}
	return string(hash), nil
}

// NewService создает сервис авторизации. passwordHash - bcrypt хэш общего пароля.
func NewService(passwordHash, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
		logger:       logger,
	}
}

// Login проверяет пароль и выдает HS256 токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("Login: invalid password")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to compare password hash: %v", err)
		return nil, fmt.Errorf("%w: Login - compare hash: %v", ErrInternal, err)
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := Claims{
		Role: adminSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &models.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify проверяет подпись, срок действия и роль токена
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Role != adminSubject || !claims.VerifyIssuer(tokenIssuer, true) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
