package repository

import (
	"context"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

// UsuarioRepository puerto hacia /usuarios. Es el único recurso con borrado físico.
type UsuarioRepository interface {
	List(ctx context.Context, estado entity.EstadoFiltro) ([]entity.Usuario, error)
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	// Create y Update envían password solo si no está vacío.
	Create(ctx context.Context, u *entity.Usuario, password string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario, password string) (*entity.Usuario, error)
	CambiarEstado(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
