package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func newUsuariosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Cuentas de operadores",
	}
	cmd.AddCommand(newUsuariosListarCmd(a))
	cmd.AddCommand(newUsuariosAccionCmd(a, "estado", "Activa o desactiva una cuenta", "¿Cambiar el estado del usuario %d?", (*usecase.UsuarioUseCase).CambiarEstado))
	cmd.AddCommand(newUsuariosAccionCmd(a, "eliminar", "Elimina definitivamente una cuenta", "¿Eliminar definitivamente al usuario %d?", (*usecase.UsuarioUseCase).Eliminar))
	return cmd
}

func (a *app) imprimirUsuarios(v *listing.Vista[entity.Usuario]) error {
	if a.json {
		return a.writeJSON(v.Filas)
	}
	encabezados, filas := listing.Tabular(usecase.DefinicionUsuario, v.Filas)
	return imprimirTabla(a.out, append([]string{"ID"}, encabezados...), conID(filas, v.Filas, func(u entity.Usuario) int64 { return u.ID }))
}

func newUsuariosListarCmd(a *app) *cobra.Command {
	var f criteriosFlags
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista usuarios (filtros correo, nombre, rol)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.contexto(cmd)
			if err != nil {
				return err
			}
			c, err := f.criterios()
			if err != nil {
				return err
			}
			v, err := a.usuario.Listar(ctx, c)
			if err != nil {
				return err
			}
			return a.imprimirUsuarios(v)
		},
	}
	f.registrar(cmd, true)
	return cmd
}

type accionUsuario func(uc *usecase.UsuarioUseCase, ctx context.Context, id int64, c listing.Criterios) (*listing.Vista[entity.Usuario], error)

// newUsuariosAccionCmd comando de fila con confirmación que termina mostrando el listado recargado.
func newUsuariosAccionCmd(a *app, nombre, corto, pregunta string, accion accionUsuario) *cobra.Command {
	var f criteriosFlags
	cmd := &cobra.Command{
		Use:   nombre + " <id>",
		Short: corto,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, err := a.contexto(cmd)
			if err != nil {
				return err
			}
			c, err := f.criterios()
			if err != nil {
				return err
			}
			if !a.confirmar(fmt.Sprintf(pregunta, id)) {
				fmt.Fprintln(a.out, "Cancelado")
				return nil
			}
			v, err := accion(a.usuario, ctx, id, c)
			if err != nil {
				return err
			}
			return a.imprimirUsuarios(v)
		},
	}
	f.registrar(cmd, true)
	cmd.Flags().BoolVarP(&a.si, "yes", "y", false, "No pedir confirmación")
	return cmd
}
