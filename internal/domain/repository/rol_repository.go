package repository

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// RolRepository puerto hacia /roles y /permisos.
type RolRepository interface {
	List(ctx context.Context) ([]entity.Rol, error)
	GetByID(ctx context.Context, id int64) (*entity.Rol, error)
	Create(ctx context.Context, r *entity.Rol, permisoIDs []int64) (*entity.Rol, error)
	Update(ctx context.Context, r *entity.Rol, permisoIDs []int64) (*entity.Rol, error)
	ListPermisos(ctx context.Context) ([]entity.Permiso, error)
}
