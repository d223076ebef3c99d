package dto

// UsuarioRequest entrada para crear o editar un usuario. Password vacío en edición no cambia la clave.
// VigenciaDesde/VigenciaHasta en formato AAAA-MM-DD.
type UsuarioRequest struct {
	Correo        string `json:"correo" form:"correo" validate:"required,email,max=150"`
	Nombre        string `json:"nombre" form:"nombre" validate:"required,max=200"`
	RolID         int64  `json:"rolId" form:"rolId" validate:"required,gt=0"`
	Password      string `json:"password,omitempty" form:"password" validate:"omitempty,min=8,max=72"`
	VigenciaDesde string `json:"vigenciaDesde,omitempty" form:"vigenciaDesde" validate:"omitempty,datetime=2006-01-02"`
	VigenciaHasta string `json:"vigenciaHasta,omitempty" form:"vigenciaHasta" validate:"omitempty,datetime=2006-01-02"`
}
