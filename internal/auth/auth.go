package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Роли сотрудников
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// ErrInvalidToken - токен не прошёл проверку
var ErrInvalidToken = errors.New("invalid token")

// Identity - пользователь, восстановленный из токена
type Identity struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

// IsPrivileged сообщает, может ли пользователь управлять проектами и задачами
func (i Identity) IsPrivileged() bool {
	return i.Role == RoleAdmin || i.Role == RoleManager
}

// Verifier восстанавливает пользователя по токену
type Verifier interface {
	Verify(token string) (Identity, error)
}

type claims struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager выпускает и проверяет HS256 токены
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager создаёт менеджер токенов
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue подписывает токен для пользователя
func (m *JWTManager) Issue(identity Identity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID:   identity.ID,
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) Verify(tokenString string) (Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.ID <= 0 {
		return Identity{}, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}
	return Identity{ID: c.ID, Role: c.Role}, nil
}

type identityKey struct{}

// WithIdentity кладёт пользователя в контекст запроса
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext достаёт пользователя из контекста
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
