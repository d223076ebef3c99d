package repository

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// AuthGateway puerto hacia los endpoints de autenticación del backend.
type AuthGateway interface {
	// Login devuelve el token emitido y el usuario autenticado.
	Login(ctx context.Context, correo, password string) (string, *entity.Usuario, error)
	// MisPermisos consulta la lista vigente de permisos del portador del token del contexto.
	MisPermisos(ctx context.Context) ([]string, error)
}

// SesionRepository persiste la sesión del operador entre ejecuciones (CLI).
type SesionRepository interface {
	Load(ctx context.Context) (*entity.Sesion, error)
	Save(ctx context.Context, s *entity.Sesion) error
	Clear(ctx context.Context) error
}
