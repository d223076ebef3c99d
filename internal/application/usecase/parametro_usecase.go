package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-consola/internal/application/authz"
	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

// ParametroUseCase lógica de las páginas de parámetros organizacionales
// (áreas, unidades, ambientes, cargos, ciudades, distritos, auxiliares, personal).
type ParametroUseCase struct {
	repo  repository.ParametroRepository
	tabla TablaExporter
	log   *logger.Logger
}

// NewParametroUseCase construye el caso de uso.
func NewParametroUseCase(repo repository.ParametroRepository, tabla TablaExporter, log *logger.Logger) *ParametroUseCase {
	return &ParametroUseCase{repo: repo, tabla: tabla, log: log}
}

// Listar trae el listado completo con el filtro de estado y arma la vista filtrada.
func (uc *ParametroUseCase) Listar(ctx context.Context, r entity.Recurso, c listing.Criterios) (*listing.Vista[entity.Parametro], error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.Ver)); err != nil {
		return nil, err
	}
	c = normalizar(c)
	items, err := uc.repo.List(ctx, r, c.Estado)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", r.Clave, err)
	}
	return listing.NuevaVista(items, c, DefinicionParametro), nil
}

// Obtener un parámetro por id.
func (uc *ParametroUseCase) Obtener(ctx context.Context, r entity.Recurso, id int64) (*entity.Parametro, error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.Ver)); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, r, id)
	if err != nil {
		return nil, fmt.Errorf("obtener %s %d: %w", r.Clave, id, err)
	}
	return p, nil
}

// Crear un parámetro. El estado inicial lo decide el backend.
func (uc *ParametroUseCase) Crear(ctx context.Context, r entity.Recurso, in dto.ParametroRequest) (*entity.Parametro, error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.Crear)); err != nil {
		return nil, err
	}
	if err := dto.ValidarStruct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Create(ctx, r, &entity.Parametro{Codigo: in.Codigo, Descripcion: in.Descripcion})
	if err != nil {
		return nil, fmt.Errorf("crear %s: %w", r.Clave, err)
	}
	return p, nil
}

// Actualizar código y descripción. El estado nunca se edita por aquí.
func (uc *ParametroUseCase) Actualizar(ctx context.Context, r entity.Recurso, id int64, in dto.ParametroRequest) (*entity.Parametro, error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.Editar)); err != nil {
		return nil, err
	}
	if err := dto.ValidarStruct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, r, &entity.Parametro{ID: id, Codigo: in.Codigo, Descripcion: in.Descripcion})
	if err != nil {
		return nil, fmt.Errorf("actualizar %s %d: %w", r.Clave, id, err)
	}
	return p, nil
}

// CambiarEstado alterna ACTIVO/INACTIVO y, si el backend lo acepta, vuelve a listar una sola vez
// con los mismos criterios. No hay actualización optimista.
func (uc *ParametroUseCase) CambiarEstado(ctx context.Context, r entity.Recurso, id int64, c listing.Criterios) (*listing.Vista[entity.Parametro], error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.CambiarEstado)); err != nil {
		return nil, err
	}
	if err := uc.repo.CambiarEstado(ctx, r, id); err != nil {
		uc.log.Error().Err(err).Str("recurso", r.Clave).Int64("id", id).Msg("cambiar estado")
		return nil, fmt.Errorf("cambiar estado de %s %d: %w", r.Clave, id, err)
	}
	return uc.Listar(ctx, r, c)
}

// ExportarPDF descarga el reporte PDF generado por el backend para el filtro de estado.
func (uc *ParametroUseCase) ExportarPDF(ctx context.Context, r entity.Recurso, estado entity.EstadoFiltro) ([]byte, error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.Exportar)); err != nil {
		return nil, err
	}
	if estado == "" {
		estado = entity.FiltroActivos
	}
	pdf, err := uc.repo.ExportarPDF(ctx, r, estado)
	if err != nil {
		uc.log.Error().Err(err).Str("recurso", r.Clave).Msg("exportar pdf")
		return nil, fmt.Errorf("exportar %s: %w", r.Clave, err)
	}
	return pdf, nil
}

// ExportarXLSX genera localmente una hoja de cálculo con la vista filtrada actual.
func (uc *ParametroUseCase) ExportarXLSX(ctx context.Context, r entity.Recurso, c listing.Criterios) ([]byte, error) {
	if err := authz.Exigir(ctx, authz.Para(r, authz.Exportar)); err != nil {
		return nil, err
	}
	vista, err := uc.Listar(ctx, r, c)
	if err != nil {
		return nil, err
	}
	encabezados, filas := listing.Tabular(DefinicionParametro, vista.Filas)
	return uc.tabla.ExportarTabla(r.Nombre, encabezados, filas)
}
