package rest

import (
	"context"
	"net/http"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

var _ repository.EdificioRepository = (*EdificioRepository)(nil)

// EdificioRepository implementa /edificios. El registro viaja como la bolsa plana de campos
// que producen las secciones embebidas de entity.Edificio.
type EdificioRepository struct {
	c *Client
}

// NewEdificioRepository construye el repositorio.
func NewEdificioRepository(c *Client) *EdificioRepository {
	return &EdificioRepository{c: c}
}

func (r *EdificioRepository) List(ctx context.Context, estado entity.EstadoFiltro) ([]entity.Edificio, error) {
	var out []entity.Edificio
	if err := r.c.do(ctx, http.MethodGet, entity.RecursoEdificios.Ruta, estadoQuery(estado), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Edificio{}
	}
	return out, nil
}

func (r *EdificioRepository) GetByID(ctx context.Context, id int64) (*entity.Edificio, error) {
	var out entity.Edificio
	if err := r.c.do(ctx, http.MethodGet, idPath(entity.RecursoEdificios.Ruta, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EdificioRepository) Create(ctx context.Context, e *entity.Edificio) (*entity.Edificio, error) {
	var out entity.Edificio
	if err := r.c.do(ctx, http.MethodPost, entity.RecursoEdificios.Ruta, nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EdificioRepository) Update(ctx context.Context, e *entity.Edificio) (*entity.Edificio, error) {
	var out entity.Edificio
	if err := r.c.do(ctx, http.MethodPut, idPath(entity.RecursoEdificios.Ruta, e.ID), nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EdificioRepository) CambiarEstado(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodPut, idPath(entity.RecursoEdificios.Ruta, id)+"/cambiar-estado", nil, nil, nil)
}

func (r *EdificioRepository) ExportarPDF(ctx context.Context, estado entity.EstadoFiltro) ([]byte, error) {
	return r.c.download(ctx, entity.RecursoEdificios.Ruta+"/exportar/pdf", estadoQuery(estado))
}
