package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenKind selects the signing secret and lifetime for a token.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Parse failures are collapsed into two distinguishable kinds: the caller maps
// them to different client-facing error codes.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenManager issues and validates JWT access/refresh pairs. Access and
// refresh tokens use distinct secrets, so one can never verify as the other.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(accessSecret, refreshSecret string, accessTTLMinutes, refreshTTLMinutes int) *TokenManager {
	if accessTTLMinutes <= 0 {
		accessTTLMinutes = 60
	}
	if refreshTTLMinutes <= 0 {
		refreshTTLMinutes = 7 * 24 * 60
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     time.Duration(accessTTLMinutes) * time.Minute,
		refreshTTL:    time.Duration(refreshTTLMinutes) * time.Minute,
	}
}

// Claims describes the JWT payload. The subject is the user id.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Generate builds and signs a token of the given kind for the user.
func (tm *TokenManager) Generate(userID string, kind TokenKind) (string, time.Time, error) {
	secret, ttl := tm.material(kind)
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// GeneratePair issues an access/refresh token pair for the user.
func (tm *TokenManager) GeneratePair(userID string) (accessToken, refreshToken string, err error) {
	accessToken, _, err = tm.Generate(userID, TokenKindAccess)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = tm.Generate(userID, TokenKindRefresh)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Parse validates a token against the kind-specific secret and returns its
// claims. Expiry failures surface as ErrTokenExpired; every other failure
// (bad signature, wrong structure, wrong algorithm) as ErrTokenMalformed.
func (tm *TokenManager) Parse(tokenStr string, kind TokenKind) (*Claims, error) {
	secret, _ := tm.material(kind)
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return claims, nil
}

func (tm *TokenManager) material(kind TokenKind) ([]byte, time.Duration) {
	if kind == TokenKindRefresh {
		return tm.refreshSecret, tm.refreshTTL
	}
	return tm.accessSecret, tm.accessTTL
}
