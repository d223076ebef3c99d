package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func newEdificiosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edificios",
		Short: "Bienes inmuebles",
	}
	cmd.AddCommand(newEdificiosListarCmd(a))
	cmd.AddCommand(newEdificiosEstadoCmd(a))
	cmd.AddCommand(newEdificiosExportarCmd(a))
	cmd.AddCommand(newEdificiosFichaCmd(a))
	return cmd
}

func (a *app) imprimirEdificios(v *listing.Vista[entity.Edificio]) error {
	if a.json {
		return a.writeJSON(v.Filas)
	}
	encabezados, filas := listing.Tabular(usecase.DefinicionEdificio, v.Filas)
	return imprimirTabla(a.out, append([]string{"ID"}, encabezados...), conID(filas, v.Filas, func(e entity.Edificio) int64 { return e.ID }))
}

func newEdificiosListarCmd(a *app) *cobra.Command {
	var (
		f        criteriosFlags
		busqueda string
	)
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista edificios con filtros y búsqueda rápida",
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
			v, err := a.edificio.Listar(ctx, c, busqueda)
			if err != nil {
				return err
			}
			return a.imprimirEdificios(v)
		},
	}
	f.registrar(cmd, true)
	cmd.Flags().StringVarP(&busqueda, "buscar", "q", "", "Búsqueda aproximada por código, nombre, descripción o dirección")
	return cmd
}

func newEdificiosEstadoCmd(a *app) *cobra.Command {
	var f criteriosFlags
	cmd := &cobra.Command{
		Use:   "estado <id>",
		Short: "Activa o desactiva un edificio y muestra el listado actualizado",
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
			if !a.confirmar(fmt.Sprintf("¿Cambiar el estado del edificio %d?", id)) {
				fmt.Fprintln(a.out, "Cancelado")
				return nil
			}
			v, err := a.edificio.CambiarEstado(ctx, id, c)
			if err != nil {
				return err
			}
			return a.imprimirEdificios(v)
		},
	}
	f.registrar(cmd, true)
	cmd.Flags().BoolVarP(&a.si, "yes", "y", false, "No pedir confirmación")
	return cmd
}

func newEdificiosExportarCmd(a *app) *cobra.Command {
	var (
		f        criteriosFlags
		busqueda string
		formato  string
		salida   string
	)
	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta edificios a PDF (reporte del backend) o XLSX (vista filtrada)",
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
			var datos []byte
			switch formato {
			case "pdf":
				datos, err = a.edificio.ExportarPDF(ctx, c.Estado)
			case "xlsx":
				datos, err = a.edificio.ExportarXLSX(ctx, c, busqueda)
			default:
				return withCode(exitValidacion, fmt.Errorf("formato inválido %q: use pdf o xlsx", formato))
			}
			if err != nil {
				return err
			}
			if salida == "" {
				salida = "edificios." + formato
			}
			return a.escribirArchivo(salida, datos)
		},
	}
	f.registrar(cmd, true)
	cmd.Flags().StringVarP(&busqueda, "buscar", "q", "", "Búsqueda rápida (solo xlsx)")
	cmd.Flags().StringVar(&formato, "formato", "pdf", "pdf o xlsx")
	cmd.Flags().StringVarP(&salida, "output", "o", "", "Archivo de salida (por defecto edificios.<formato>)")
	return cmd
}

func newEdificiosFichaCmd(a *app) *cobra.Command {
	var salida string
	cmd := &cobra.Command{
		Use:   "ficha <id>",
		Short: "Genera la ficha PDF de un edificio",
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
			pdf, err := a.edificio.Ficha(ctx, id)
			if err != nil {
				return err
			}
			if salida == "" {
				salida = fmt.Sprintf("ficha-%d.pdf", id)
			}
			return a.escribirArchivo(salida, pdf)
		},
	}
	cmd.Flags().StringVarP(&salida, "output", "o", "", "Archivo de salida (por defecto ficha-<id>.pdf)")
	return cmd
}
