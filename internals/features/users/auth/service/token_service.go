// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"biblioteca_backend/internals/configs"
)

const (
	SessionCookieName = "session_token"
	sessionTTL        = 24 * time.Hour
)

// SessionClaims é a identidade autenticada carregada pelo cookie de
// sessão: papel, nome de exibição e o identificador do papel (id do
// admin, ou id+matrícula do aluno).
type SessionClaims struct {
	Role          string `json:"role"`
	Name          string `json:"name"`
	AdminID       string `json:"admin_id,omitempty"`
	StudentID     string `json:"student_id,omitempty"`
	Matriculation string `json:"matricula,omitempty"`
	jwt.RegisteredClaims
}

func SignSessionToken(claims SessionClaims) (string, error) {
	secret := configs.SessionSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "SESSION_SECRET não está definido")
	}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(sessionTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "método de assinatura inválido")
		}
		return []byte(configs.SessionSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "token inválido")
	}
	return claims, nil
}

func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
