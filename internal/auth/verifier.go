package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается любым верификатором при непрошедшем проверку токене.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier проверяет действительность bearer-токена.
// Реализация не привязана к транспорту: гейт передаёт сюда только сам токен.
type TokenVerifier interface {
	Verify(token string) error
}

// StaticVerifier принимает токены из фиксированного списка (конфигурация).
type StaticVerifier struct {
	tokens map[string]struct{}
}

func NewStaticVerifier(tokens []string) *StaticVerifier {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return &StaticVerifier{tokens: set}
}

func (v *StaticVerifier) Verify(token string) error {
	if _, ok := v.tokens[token]; !ok {
		return ErrInvalidToken
	}
	return nil
}

// JWTVerifier проверяет HS256-подписанные JWT с общим секретом.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

// MultiVerifier принимает токен, если его принимает хотя бы один из верификаторов.
type MultiVerifier struct {
	verifiers []TokenVerifier
}

func NewMultiVerifier(verifiers ...TokenVerifier) *MultiVerifier {
	return &MultiVerifier{verifiers: verifiers}
}

func (v *MultiVerifier) Verify(token string) error {
	for _, verifier := range v.verifiers {
		if err := verifier.Verify(token); err == nil {
			return nil
		}
	}
	return ErrInvalidToken
}
