package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

var _ repository.ParametroRepository = (*ParametroRepository)(nil)

// ParametroRepository implementa los ocho recursos de /parametros/<recurso>.
type ParametroRepository struct {
	c *Client
}

// NewParametroRepository construye el repositorio.
func NewParametroRepository(c *Client) *ParametroRepository {
	return &ParametroRepository{c: c}
}

type parametroBody struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}

func (r *ParametroRepository) List(ctx context.Context, rec entity.Recurso, estado entity.EstadoFiltro) ([]entity.Parametro, error) {
	var out []entity.Parametro
	if err := r.c.do(ctx, http.MethodGet, rec.Ruta, estadoQuery(estado), nil, &out); err != nil {
		return nil, fmt.Errorf("GET %s: %w", rec.Ruta, err)
	}
	if out == nil {
		out = []entity.Parametro{}
	}
	return out, nil
}

func (r *ParametroRepository) GetByID(ctx context.Context, rec entity.Recurso, id int64) (*entity.Parametro, error) {
	var out entity.Parametro
	if err := r.c.do(ctx, http.MethodGet, idPath(rec.Ruta, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ParametroRepository) Create(ctx context.Context, rec entity.Recurso, p *entity.Parametro) (*entity.Parametro, error) {
	var out entity.Parametro
	in := parametroBody{Codigo: p.Codigo, Descripcion: p.Descripcion}
	if err := r.c.do(ctx, http.MethodPost, rec.Ruta, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ParametroRepository) Update(ctx context.Context, rec entity.Recurso, p *entity.Parametro) (*entity.Parametro, error) {
	var out entity.Parametro
	in := parametroBody{Codigo: p.Codigo, Descripcion: p.Descripcion}
	if err := r.c.do(ctx, http.MethodPut, idPath(rec.Ruta, p.ID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CambiarEstado PUT /<recurso>/<id>/cambiar-estado sin cuerpo.
func (r *ParametroRepository) CambiarEstado(ctx context.Context, rec entity.Recurso, id int64) error {
	return r.c.do(ctx, http.MethodPut, idPath(rec.Ruta, id)+"/cambiar-estado", nil, nil, nil)
}

// ExportarPDF GET /<recurso>/exportar/pdf?estado=...
func (r *ParametroRepository) ExportarPDF(ctx context.Context, rec entity.Recurso, estado entity.EstadoFiltro) ([]byte, error) {
	return r.c.download(ctx, rec.Ruta+"/exportar/pdf", estadoQuery(estado))
}
