package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles reconocidos por la API.
const (
	RoleAdmin    = "admin"    // emite tokens y comprobantes
	RoleEmisor   = "emisor"   // emite comprobantes de su propio RUC
	RoleConsulta = "consulta" // solo validaciones y cálculos
)

// ErrSecretVacio el secreto de firma no está configurado.
var ErrSecretVacio = errors.New("jwt: secret vacío")

// Claims incluye los claims estándar JWT más el RUC del emisor y el rol.
// El RUC acota qué comprobantes puede emitir el portador del token.
type Claims struct {
	jwt.RegisteredClaims
	RUC  string `json:"ruc"`
	Role string `json:"role"`
}

// Generate genera un token JWT firmado (HS256) para subject, con el RUC del emisor y el rol.
// Cada token lleva un jti (UUID) distinto.
func Generate(secret, subject, ruc, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrSecretVacio
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		RUC:  ruc,
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve subject, RUC y rol.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (subject, ruc, role string, err error) {
	if secret == "" {
		return "", "", "", ErrSecretVacio
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.RUC, claims.Role, nil
}
