package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/rbillups/scoreboardbot/internal/models"
)

// GetGatewayAccount retrieves a gateway service account by name
func GetGatewayAccount(db *sqlx.DB, name string) (*models.GatewayAccount, error) {
	var acct models.GatewayAccount
	err := db.Get(&acct, `SELECT name, key_hash, created_at, updated_at FROM gateway_accounts WHERE name=$1`, name)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// VerifyGatewayKey checks a plaintext service key against the stored hash
func VerifyGatewayKey(hashedKey, plainKey string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(plainKey)) == nil
}

// UpsertGatewayAccount creates or rotates a gateway service account with a
// bcrypt-hashed key (used by cmd/seed-gateway)
func UpsertGatewayAccount(db *sqlx.DB, name, plainKey string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainKey), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash gateway key: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO gateway_accounts (name, key_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			key_hash = EXCLUDED.key_hash,
			updated_at = NOW()
	`, name, string(hashed))
	return err
}

// Claims are the JWT claims issued to an authenticated gateway
type Claims struct {
	Gateway string `json:"gateway"`
	jwt.RegisteredClaims
}

// IssueToken signs a short-lived HMAC JWT for the gateway
func IssueToken(secret, gateway string, ttl time.Duration) (string, error) {
	claims := Claims{
		Gateway: gateway,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gateway,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a bearer token and returns its claims
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
