package entity

import "time"

// UsuarioRef referencia embebida a un usuario (auditoría).
type UsuarioRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo,omitempty"`
}

// Parametro es la forma común de Area, UnidadOrganizacional, Ambiente, Cargo, Ciudad,
// Distrito, Auxiliar y Personal.
type Parametro struct {
	ID             int64       `json:"id"`
	Codigo         string      `json:"codigo"`
	Descripcion    string      `json:"descripcion"`
	Estado         Estado      `json:"estado"`
	CreadoPor      *UsuarioRef `json:"creado_por,omitempty"`
	ActualizadoPor *UsuarioRef `json:"actualizado_por,omitempty"`
	CreatedAt      *time.Time  `json:"created_at,omitempty"`
	UpdatedAt      *time.Time  `json:"updated_at,omitempty"`
}
