package entity

// Permiso es un permiso atómico; Nombre es la cadena que viaja en el claim "permisos" del token.
type Permiso struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Modulo      string `json:"modulo,omitempty"`
}

// Rol agrupa permisos.
type Rol struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Slug        string    `json:"slug"`
	Descripcion string    `json:"descripcion,omitempty"`
	Permisos    []Permiso `json:"permisos,omitempty"`
}

// PermisoIDs devuelve los ids de los permisos del rol.
func (r *Rol) PermisoIDs() []int64 {
	ids := make([]int64, 0, len(r.Permisos))
	for _, p := range r.Permisos {
		ids = append(ids, p.ID)
	}
	return ids
}
