package dto

import (
	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// RolRequest entrada para crear o editar un rol con su asignación de permisos.
type RolRequest struct {
	Nombre      string  `json:"nombre" form:"nombre" validate:"required,max=100"`
	Slug        string  `json:"slug" form:"slug" validate:"required,max=100"`
	Descripcion string  `json:"descripcion" form:"descripcion" validate:"max=300"`
	PermisoIDs  []int64 `json:"permisos" form:"permisos" validate:"dive,gt=0"`
}

// RolDetalle rol con sus permisos agrupados por módulo.
type RolDetalle struct {
	Rol    *entity.Rol
	Grupos []authz.GrupoPermisos
}
