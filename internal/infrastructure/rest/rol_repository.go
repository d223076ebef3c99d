package rest

import (
	"context"
	"net/http"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepository)(nil)

// RolRepository implementa /roles y el catálogo /permisos.
type RolRepository struct {
	c *Client
}

// NewRolRepository construye el repositorio.
func NewRolRepository(c *Client) *RolRepository {
	return &RolRepository{c: c}
}

type rolBody struct {
	Nombre      string  `json:"nombre"`
	Slug        string  `json:"slug"`
	Descripcion string  `json:"descripcion"`
	Permisos    []int64 `json:"permisos"`
}

func (r *RolRepository) List(ctx context.Context) ([]entity.Rol, error) {
	var out []entity.Rol
	if err := r.c.do(ctx, http.MethodGet, entity.RecursoRoles.Ruta, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Rol{}
	}
	return out, nil
}

func (r *RolRepository) GetByID(ctx context.Context, id int64) (*entity.Rol, error) {
	var out entity.Rol
	if err := r.c.do(ctx, http.MethodGet, idPath(entity.RecursoRoles.Ruta, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RolRepository) Create(ctx context.Context, rol *entity.Rol, permisoIDs []int64) (*entity.Rol, error) {
	var out entity.Rol
	if err := r.c.do(ctx, http.MethodPost, entity.RecursoRoles.Ruta, nil, nuevoRolBody(rol, permisoIDs), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RolRepository) Update(ctx context.Context, rol *entity.Rol, permisoIDs []int64) (*entity.Rol, error) {
	var out entity.Rol
	if err := r.c.do(ctx, http.MethodPut, idPath(entity.RecursoRoles.Ruta, rol.ID), nil, nuevoRolBody(rol, permisoIDs), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RolRepository) ListPermisos(ctx context.Context) ([]entity.Permiso, error) {
	var out []entity.Permiso
	if err := r.c.do(ctx, http.MethodGet, entity.RecursoPermisos.Ruta, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Permiso{}
	}
	return out, nil
}

func nuevoRolBody(rol *entity.Rol, permisoIDs []int64) rolBody {
	if permisoIDs == nil {
		permisoIDs = []int64{}
	}
	return rolBody{Nombre: rol.Nombre, Slug: rol.Slug, Descripcion: rol.Descripcion, Permisos: permisoIDs}
}
