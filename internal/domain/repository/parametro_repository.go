package repository

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// ParametroRepository puerto hacia los endpoints /parametros/<recurso> del backend.
type ParametroRepository interface {
	List(ctx context.Context, r entity.Recurso, estado entity.EstadoFiltro) ([]entity.Parametro, error)
	GetByID(ctx context.Context, r entity.Recurso, id int64) (*entity.Parametro, error)
	Create(ctx context.Context, r entity.Recurso, p *entity.Parametro) (*entity.Parametro, error)
	Update(ctx context.Context, r entity.Recurso, p *entity.Parametro) (*entity.Parametro, error)
	CambiarEstado(ctx context.Context, r entity.Recurso, id int64) error
	ExportarPDF(ctx context.Context, r entity.Recurso, estado entity.EstadoFiltro) ([]byte, error)
}
