package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the CMS operator and issues session tokens.
// There is a single admin account configured via environment, so no user
// table is involved.
type AuthService struct {
	jwtSecret     []byte
	adminUsername string
	adminPassword string
}

func NewAuthService(jwtSecret, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login checks the credentials and returns a signed token. ADMIN_PASSWORD
// may hold either a bcrypt hash or a plaintext bootstrap value.
func (s *AuthService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1

	var passOK bool
	if strings.HasPrefix(s.adminPassword, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	}

	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(username)
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", errors.New("invalid subject in token")
	}
	return username, nil
}
