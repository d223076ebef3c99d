package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func newRolesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Roles y sus permisos",
	}
	cmd.AddCommand(newRolesListarCmd(a))
	cmd.AddCommand(newRolesDetalleCmd(a))
	return cmd
}

func newRolesListarCmd(a *app) *cobra.Command {
	var f criteriosFlags
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista roles (filtros nombre, slug, descripcion)",
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
			v, err := a.rol.Listar(ctx, c)
			if err != nil {
				return err
			}
			if a.json {
				return a.writeJSON(v.Filas)
			}
			encabezados, filas := listing.Tabular(usecase.DefinicionRol, v.Filas)
			return imprimirTabla(a.out, append([]string{"ID"}, encabezados...), conID(filas, v.Filas, func(r entity.Rol) int64 { return r.ID }))
		},
	}
	f.registrar(cmd, false)
	return cmd
}

func newRolesDetalleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detalle <id>",
		Short: "Muestra un rol con sus permisos agrupados por módulo",
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
			d, err := a.rol.Detalle(ctx, id)
			if err != nil {
				return err
			}
			if a.json {
				return a.writeJSON(d.Rol)
			}
			fmt.Fprintf(a.out, "%s (%s)\n", d.Rol.Nombre, d.Rol.Slug)
			if d.Rol.Descripcion != "" {
				fmt.Fprintln(a.out, d.Rol.Descripcion)
			}
			fmt.Fprintln(a.out)
			return imprimirGrupos(a.out, d.Grupos)
		},
	}
}
