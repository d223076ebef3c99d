package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
	"github.com/jhoicas/activos-consola/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

const rutaUsuarios = "/usuarios"

// UsuarioRepository implementa /usuarios.
type UsuarioRepository struct {
	c *Client
}

// NewUsuarioRepository construye el repositorio.
func NewUsuarioRepository(c *Client) *UsuarioRepository {
	return &UsuarioRepository{c: c}
}

type usuarioBody struct {
	Correo        string  `json:"correo"`
	Nombre        string  `json:"nombre"`
	RolID         int64   `json:"rolId"`
	Password      string  `json:"password,omitempty"`
	VigenciaDesde *string `json:"vigenciaDesde"`
	VigenciaHasta *string `json:"vigenciaHasta"`
}

func nuevoUsuarioBody(u *entity.Usuario, password string) usuarioBody {
	b := usuarioBody{Correo: u.Correo, Nombre: u.Nombre, Password: password}
	if u.Rol != nil {
		b.RolID = u.Rol.ID
	}
	b.VigenciaDesde = fecha(u.VigenciaDesde)
	b.VigenciaHasta = fecha(u.VigenciaHasta)
	return b
}

func fecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func (r *UsuarioRepository) List(ctx context.Context, estado entity.EstadoFiltro) ([]entity.Usuario, error) {
	var out []entity.Usuario
	if err := r.c.do(ctx, http.MethodGet, rutaUsuarios, estadoQuery(estado), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Usuario{}
	}
	return out, nil
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := r.c.do(ctx, http.MethodGet, idPath(rutaUsuarios, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario, password string) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := r.c.do(ctx, http.MethodPost, rutaUsuarios, nil, nuevoUsuarioBody(u, password), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UsuarioRepository) Update(ctx context.Context, u *entity.Usuario, password string) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := r.c.do(ctx, http.MethodPut, idPath(rutaUsuarios, u.ID), nil, nuevoUsuarioBody(u, password), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UsuarioRepository) CambiarEstado(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodPut, idPath(rutaUsuarios, id)+"/cambiar-estado", nil, nil, nil)
}

// Delete borrado físico; solo existe para usuarios.
func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath(rutaUsuarios, id), nil, nil, nil)
}
