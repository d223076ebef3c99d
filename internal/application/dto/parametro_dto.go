package dto

// ParametroRequest entrada para crear o editar un parámetro organizacional.
type ParametroRequest struct {
	Codigo      string `json:"codigo" form:"codigo" validate:"required,max=50"`
	Descripcion string `json:"descripcion" form:"descripcion" validate:"required,max=300"`
}
