package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/config"
)

// Claims são os dados de identidade carregados no token
type Claims struct {
	UserID   string
	Email    string
	UserType entities.UserType
}

// TokenManager emite e verifica tokens JWT HS256
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager cria um TokenManager a partir da configuração JWT
func NewTokenManager(cfg *config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	expiry, err := time.ParseDuration(cfg.AccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt access expiry %q: %w", cfg.AccessExpiry, err)
	}

	return &TokenManager{
		secret: []byte(cfg.Secret),
		expiry: expiry,
	}, nil
}

// Generate emite um token para o usuário com claims sub, email e user_type
func (m *TokenManager) Generate(user *entities.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"user_type": string(user.UserType),
		"exp":       time.Now().Add(m.expiry).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida um token e extrai as claims de identidade
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	email, _ := mapClaims["email"].(string)
	userType, _ := mapClaims["user_type"].(string)

	return &Claims{
		UserID:   sub,
		Email:    email,
		UserType: entities.UserType(userType),
	}, nil
}
