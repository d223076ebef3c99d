package repository

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// EdificioRepository puerto hacia /edificios.
type EdificioRepository interface {
	List(ctx context.Context, estado entity.EstadoFiltro) ([]entity.Edificio, error)
	GetByID(ctx context.Context, id int64) (*entity.Edificio, error)
	Create(ctx context.Context, e *entity.Edificio) (*entity.Edificio, error)
	Update(ctx context.Context, e *entity.Edificio) (*entity.Edificio, error)
	CambiarEstado(ctx context.Context, id int64) error
	ExportarPDF(ctx context.Context, estado entity.EstadoFiltro) ([]byte, error)
}
