package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

// RolUseCase lógica de las páginas de roles y del catálogo de permisos.
type RolUseCase struct {
	repo repository.RolRepository
}

// NewRolUseCase construye el caso de uso.
func NewRolUseCase(repo repository.RolRepository) *RolUseCase {
	return &RolUseCase{repo: repo}
}

// Listar roles; el filtro de estado no aplica.
func (uc *RolUseCase) Listar(ctx context.Context, c listing.Criterios) (*listing.Vista[entity.Rol], error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoRoles, authz.Ver)); err != nil {
		return nil, err
	}
	c = normalizar(c)
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	return listing.NuevaVista(items, c, DefinicionRol), nil
}

// Detalle rol con sus permisos agrupados por módulo.
func (uc *RolUseCase) Detalle(ctx context.Context, id int64) (*dto.RolDetalle, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoRoles, authz.Ver)); err != nil {
		return nil, err
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener rol %d: %w", id, err)
	}
	return &dto.RolDetalle{Rol: r, Grupos: authz.AgruparPorModulo(r.Permisos)}, nil
}

// CatalogoPermisos todos los permisos del sistema agrupados por módulo (formulario de rol).
func (uc *RolUseCase) CatalogoPermisos(ctx context.Context) ([]authz.GrupoPermisos, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoRoles, authz.Ver)); err != nil {
		return nil, err
	}
	ps, err := uc.repo.ListPermisos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar permisos: %w", err)
	}
	return authz.AgruparPorModulo(ps), nil
}

// Crear un rol con su asignación inicial de permisos.
func (uc *RolUseCase) Crear(ctx context.Context, in dto.RolRequest) (*entity.Rol, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoRoles, authz.Crear)); err != nil {
		return nil, err
	}
	if err := dto.ValidarStruct(in); err != nil {
		return nil, err
	}
	r, err := uc.repo.Create(ctx, &entity.Rol{Nombre: in.Nombre, Slug: in.Slug, Descripcion: in.Descripcion}, in.PermisoIDs)
	if err != nil {
		return nil, fmt.Errorf("crear rol: %w", err)
	}
	return r, nil
}

// Actualizar datos y permisos de un rol. La lista de permisos reemplaza a la anterior.
func (uc *RolUseCase) Actualizar(ctx context.Context, id int64, in dto.RolRequest) (*entity.Rol, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoRoles, authz.Editar)); err != nil {
		return nil, err
	}
	if err := dto.ValidarStruct(in); err != nil {
		return nil, err
	}
	r, err := uc.repo.Update(ctx, &entity.Rol{ID: id, Nombre: in.Nombre, Slug: in.Slug, Descripcion: in.Descripcion}, in.PermisoIDs)
	if err != nil {
		return nil, fmt.Errorf("actualizar rol %d: %w", id, err)
	}
	return r, nil
}
