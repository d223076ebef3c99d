package usecase

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// TablaExporter genera una hoja de cálculo con la vista filtrada de un listado.
type TablaExporter interface {
	ExportarTabla(titulo string, encabezados []string, filas [][]string) ([]byte, error)
}

// FichaGenerator genera la ficha PDF de un edificio.
type FichaGenerator interface {
	GenerarFicha(ctx context.Context, e *entity.Edificio) ([]byte, error)
}
