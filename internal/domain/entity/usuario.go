package entity

import "time"

// RolRef referencia al rol asignado a un usuario.
type RolRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Slug   string `json:"slug,omitempty"`
}

// Usuario representa una cuenta de operador del sistema de activos.
// VigenciaDesde/VigenciaHasta delimitan la ventana de validez opcional de la cuenta.
type Usuario struct {
	ID            int64       `json:"id"`
	Correo        string      `json:"correo"`
	Nombre        string      `json:"nombre"`
	Rol           *RolRef     `json:"rol,omitempty"`
	Estado        Estado      `json:"estado,omitempty"`
	VigenciaDesde *time.Time  `json:"vigenciaDesde,omitempty"`
	VigenciaHasta *time.Time  `json:"vigenciaHasta,omitempty"`
	CreadoPor     *UsuarioRef `json:"creadoPor,omitempty"`
	ModificadoPor *UsuarioRef `json:"modificadoPor,omitempty"`
	CreadoEn      *time.Time  `json:"creadoEn,omitempty"`
	ModificadoEn  *time.Time  `json:"modificadoEn,omitempty"`
}

// NombreRol devuelve el nombre del rol o "" si no tiene.
func (u *Usuario) NombreRol() string {
	if u == nil || u.Rol == nil {
		return ""
	}
	return u.Rol.Nombre
}

// VigenteEn indica si la cuenta está dentro de su ventana de validez en t.
func (u *Usuario) VigenteEn(t time.Time) bool {
	if u.VigenciaDesde != nil && t.Before(*u.VigenciaDesde) {
		return false
	}
	if u.VigenciaHasta != nil && t.After(*u.VigenciaHasta) {
		return false
	}
	return true
}
