package dto

import "github.com/jhoicas/activos-consola/internal/domain/entity"

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Correo   string `json:"correo" form:"correo" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse respuesta de POST /auth/login.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario *entity.Usuario `json:"usuario"`
}

// PermisosResponse respuesta de GET /auth/permisos.
type PermisosResponse struct {
	Permisos []string `json:"permisos"`
}
