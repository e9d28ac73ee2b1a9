package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default lifetime of a QR ordering token. Overridable through the
// QR_TOKEN_TTL_MINUTES env var.
const defaultQRTokenTTL = 2 * time.Hour

// QRClaims scopes a guest ordering token to a single table.
type QRClaims struct {
	TableID uint `json:"table_id"`
	jwt.RegisteredClaims
}

// QRTokenTTL returns the configured token lifetime.
func QRTokenTTL() time.Duration {
	if raw := os.Getenv("QR_TOKEN_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultQRTokenTTL
}

// GenerateQRToken membuat token ordering untuk satu meja. Token dibatasi
// waktu; guest yang scan QR hanya bisa order ke meja ini.
func GenerateQRToken(tableID uint) (string, time.Time, error) {
	expiresAt := time.Now().Add(QRTokenTTL())

	claims := &QRClaims{
		TableID: tableID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "floorplan-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseQRToken validates a guest ordering token and returns its claims.
func ParseQRToken(tokenString string) (*QRClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &QRClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired QR token")
	}

	claims, ok := token.Claims.(*QRClaims)
	if !ok || claims.TableID == 0 {
		return nil, errors.New("invalid QR token claims")
	}

	return claims, nil
}
