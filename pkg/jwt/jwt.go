package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token emitido por el backend de activos.
// Permisos es la lista de nombres de permiso con la que la consola decide qué mostrar.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID int64    `json:"id,omitempty"`
	Correo    string   `json:"correo,omitempty"`
	Rol       string   `json:"rol,omitempty"`
	Permisos  []string `json:"permisos,omitempty"`
}

// Generate firma un token HS256 con los claims dados. Lo usa el backend simulado de los tests
// y la CLI en modo desarrollo; el token real siempre lo emite el backend.
func Generate(secret string, claims Claims, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Decode lee el payload del token SIN verificar la firma: la confianza se delega al backend
// que lo emitió y que vuelve a validarlo en cada petición.
func Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar payload: %w", err)
	}
	return claims, nil
}

// Permisos devuelve el claim "permisos" o una lista vacía si el token falta,
// está mal formado o no trae el claim. Nunca falla.
func Permisos(tokenString string) []string {
	claims, err := Decode(tokenString)
	if err != nil || claims.Permisos == nil {
		return []string{}
	}
	return claims.Permisos
}
