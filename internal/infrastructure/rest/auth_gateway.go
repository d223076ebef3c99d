package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

var _ repository.AuthGateway = (*AuthGateway)(nil)

// AuthGateway implementa /auth/login y /auth/permisos.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

// Login envía las credenciales; el token de la respuesta se guarda en la sesión.
func (g *AuthGateway) Login(ctx context.Context, correo, password string) (string, *entity.Usuario, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Correo: correo, Password: password}
	if err := g.c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return "", nil, err
	}
	if out.Token == "" {
		return "", nil, fmt.Errorf("%w: respuesta de login sin token", domain.ErrBackend)
	}
	return out.Token, out.Usuario, nil
}

// MisPermisos GET /auth/permisos. Acepta {"permisos": [...]} o la lista directa.
func (g *AuthGateway) MisPermisos(ctx context.Context) ([]string, error) {
	var raw json.RawMessage
	if err := g.c.do(ctx, http.MethodGet, "/auth/permisos", nil, nil, &raw); err != nil {
		return nil, err
	}
	var lista []string
	if err := json.Unmarshal(raw, &lista); err == nil {
		return noNil(lista), nil
	}
	var out dto.PermisosResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: respuesta de permisos inválida: %v", domain.ErrBackend, err)
	}
	return noNil(out.Permisos), nil
}

func noNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
