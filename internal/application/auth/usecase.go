package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
	"github.com/jhoicas/activos-consola/pkg/jwt"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// SessionUseCase casos de uso de la sesión del operador: login, permisos y logout.
// No persiste nada: cada interfaz (web o CLI) guarda la sesión devuelta en su propio almacén.
type SessionUseCase struct {
	gateway repository.AuthGateway
	log     *logger.Logger
}

// NewSessionUseCase construye el caso de uso de sesión.
func NewSessionUseCase(gateway repository.AuthGateway, log *logger.Logger) *SessionUseCase {
	return &SessionUseCase{gateway: gateway, log: log}
}

// Login valida credenciales contra el backend y arma la sesión con los permisos del token.
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Sesion, error) {
	if err := dto.ValidarStruct(in); err != nil {
		return nil, err
	}
	token, usuario, err := uc.gateway.Login(ctx, in.Correo, in.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("login: %w", domain.ErrUnauthorized)
	}
	s := &entity.Sesion{
		Token:    token,
		Usuario:  usuario,
		Permisos: jwt.Permisos(token),
		Auth:     true,
	}
	uc.log.Info().Str("correo", in.Correo).Int("permisos", len(s.Permisos)).Msg("sesión iniciada")
	return s, nil
}

// Logout deja la sesión vacía; el llamador borra además su almacén.
func (uc *SessionUseCase) Logout(s *entity.Sesion) {
	if s == nil {
		return
	}
	*s = entity.Sesion{Permisos: []string{}}
}

// PermisosUsuario decodifica el token de la sesión y devuelve su claim de permisos.
// Sin sesión, sin token, con token mal formado o sin claim devuelve una lista vacía.
func (uc *SessionUseCase) PermisosUsuario(s *entity.Sesion) []string {
	if s == nil || s.Token == "" {
		return []string{}
	}
	return jwt.Permisos(s.Token)
}

// RefrescarPermisos vuelve a pedir la lista de permisos al backend con el token de la sesión.
// Un 403 significa "sin permisos asignados": la sesión sigue autenticada pero queda sin
// permisos. Cualquier otro fallo se registra y devuelve una lista vacía conservando los
// permisos anteriores. Si la consulta tiene éxito, la lista queda guardada en la sesión.
func (uc *SessionUseCase) RefrescarPermisos(ctx context.Context, s *entity.Sesion) []string {
	if s == nil || s.Token == "" {
		return []string{}
	}
	permisos, err := uc.gateway.MisPermisos(entity.ContextWithSesion(ctx, s))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			uc.log.Info().Msg("el usuario no tiene permisos asignados")
			s.Permisos = []string{}
			return []string{}
		}
		uc.log.Error().Err(err).Msg("refrescar permisos")
		return []string{}
	}
	if permisos == nil {
		permisos = []string{}
	}
	s.Permisos = permisos
	return permisos
}

// PermisosAgrupados permisos de la sesión agrupados por módulo (página de perfil).
func (uc *SessionUseCase) PermisosAgrupados(s *entity.Sesion) []authz.GrupoPermisos {
	var nombres []string
	if s != nil {
		nombres = s.Permisos
	}
	return authz.AgruparPorModulo(authz.PermisosDesdeNombres(nombres))
}
