package usecase

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// EdificioUseCase lógica de las páginas de edificios (activos inmuebles).
type EdificioUseCase struct {
	repo  repository.EdificioRepository
	ficha FichaGenerator
	tabla TablaExporter
	log   *logger.Logger
}

// NewEdificioUseCase construye el caso de uso.
func NewEdificioUseCase(repo repository.EdificioRepository, ficha FichaGenerator, tabla TablaExporter, log *logger.Logger) *EdificioUseCase {
	return &EdificioUseCase{repo: repo, ficha: ficha, tabla: tabla, log: log}
}

// Listar edificios con filtros por columna y, opcionalmente, la búsqueda rápida.
// Con búsqueda el orden es por cercanía en lugar de por código.
func (uc *EdificioUseCase) Listar(ctx context.Context, c listing.Criterios, busqueda string) (*listing.Vista[entity.Edificio], error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.Ver)); err != nil {
		return nil, err
	}
	c = normalizar(c)
	items, err := uc.repo.List(ctx, c.Estado)
	if err != nil {
		return nil, fmt.Errorf("listar edificios: %w", err)
	}
	vista := listing.NuevaVista(items, c, DefinicionEdificio)
	if q := strings.TrimSpace(busqueda); q != "" {
		vista.Filas = listing.Buscar(vista.Filas, q, textoBusqueda)
	}
	return vista, nil
}

func textoBusqueda(e entity.Edificio) string {
	return e.Codigo + " " + e.NombreEdificio + " " + e.Descripcion + " " + e.Direccion
}

// Obtener un edificio por id.
func (uc *EdificioUseCase) Obtener(ctx context.Context, id int64) (*entity.Edificio, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.Ver)); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener edificio %d: %w", id, err)
	}
	return e, nil
}

// Validar revisa cada sección del formulario; los errores de todas se reúnen en uno solo.
func Validar(e *entity.Edificio) error {
	campos := map[string]string{}
	for _, s := range e.Secciones() {
		if err := dto.ValidarStruct(s.Datos); err != nil {
			invalidos := dto.CamposInvalidos(err)
			if invalidos == nil {
				return err
			}
			maps.Copy(campos, invalidos)
		}
	}
	if len(campos) > 0 {
		return &dto.ValidationError{Campos: campos}
	}
	return nil
}

// Crear un edificio validando sus secciones.
func (uc *EdificioUseCase) Crear(ctx context.Context, e *entity.Edificio) (*entity.Edificio, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.Crear)); err != nil {
		return nil, err
	}
	if err := Validar(e); err != nil {
		return nil, err
	}
	e.ID = 0
	e.Estado = ""
	out, err := uc.repo.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("crear edificio: %w", err)
	}
	return out, nil
}

// Actualizar un edificio. El estado no se envía: solo cambia por CambiarEstado.
func (uc *EdificioUseCase) Actualizar(ctx context.Context, id int64, e *entity.Edificio) (*entity.Edificio, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.Editar)); err != nil {
		return nil, err
	}
	if err := Validar(e); err != nil {
		return nil, err
	}
	e.ID = id
	e.Estado = ""
	out, err := uc.repo.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("actualizar edificio %d: %w", id, err)
	}
	return out, nil
}

// CambiarEstado alterna el estado y vuelve a listar una vez con los mismos criterios.
func (uc *EdificioUseCase) CambiarEstado(ctx context.Context, id int64, c listing.Criterios) (*listing.Vista[entity.Edificio], error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.CambiarEstado)); err != nil {
		return nil, err
	}
	if err := uc.repo.CambiarEstado(ctx, id); err != nil {
		uc.log.Error().Err(err).Int64("id", id).Msg("cambiar estado de edificio")
		return nil, fmt.Errorf("cambiar estado de edificio %d: %w", id, err)
	}
	return uc.Listar(ctx, c, "")
}

// ExportarPDF reporte PDF del backend.
func (uc *EdificioUseCase) ExportarPDF(ctx context.Context, estado entity.EstadoFiltro) ([]byte, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.Exportar)); err != nil {
		return nil, err
	}
	if estado == "" {
		estado = entity.FiltroActivos
	}
	pdf, err := uc.repo.ExportarPDF(ctx, estado)
	if err != nil {
		uc.log.Error().Err(err).Msg("exportar edificios")
		return nil, fmt.Errorf("exportar edificios: %w", err)
	}
	return pdf, nil
}

// ExportarXLSX hoja de cálculo de la vista filtrada.
func (uc *EdificioUseCase) ExportarXLSX(ctx context.Context, c listing.Criterios, busqueda string) ([]byte, error) {
	if err := authz.Exigir(ctx, authz.Para(entity.RecursoEdificios, authz.Exportar)); err != nil {
		return nil, err
	}
	vista, err := uc.Listar(ctx, c, busqueda)
	if err != nil {
		return nil, err
	}
	encabezados, filas := listing.Tabular(DefinicionEdificio, vista.Filas)
	return uc.tabla.ExportarTabla(entity.RecursoEdificios.Nombre, encabezados, filas)
}

// Ficha genera localmente la ficha PDF de un edificio.
func (uc *EdificioUseCase) Ficha(ctx context.Context, id int64) ([]byte, error) {
	e, err := uc.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.ficha.GenerarFicha(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("ficha de edificio %d: %w", id, err)
	}
	return pdf, nil
}
