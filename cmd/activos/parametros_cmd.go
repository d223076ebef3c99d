package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/activos-consola/internal/application/listing"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func newParametrosCmd(a *app) *cobra.Command {
	claves := make([]string, 0, len(entity.Parametros()))
	for _, r := range entity.Parametros() {
		claves = append(claves, r.Clave)
	}
	cmd := &cobra.Command{
		Use:   "parametros",
		Short: "Parámetros organizacionales (" + strings.Join(claves, ", ") + ")",
	}
	cmd.AddCommand(newParametrosListarCmd(a))
	cmd.AddCommand(newParametrosEstadoCmd(a))
	cmd.AddCommand(newParametrosExportarCmd(a))
	return cmd
}

func recursoParametro(clave string) (entity.Recurso, error) {
	r, ok := entity.ParametroPorClave(clave)
	if !ok {
		return r, withCode(exitValidacion, fmt.Errorf("recurso desconocido %q", clave))
	}
	return r, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, withCode(exitValidacion, fmt.Errorf("id inválido %q", s))
	}
	return id, nil
}

func (a *app) imprimirParametros(v *listing.Vista[entity.Parametro]) error {
	if a.json {
		return a.writeJSON(v.Filas)
	}
	encabezados, filas := listing.Tabular(usecase.DefinicionParametro, v.Filas)
	return imprimirTabla(a.out, append([]string{"ID"}, encabezados...), conID(filas, v.Filas, func(p entity.Parametro) int64 { return p.ID }))
}

// conID antepone el id de cada registro a su fila.
func conID[T any](filas [][]string, registros []T, id func(T) int64) [][]string {
	out := make([][]string, len(filas))
	for i, f := range filas {
		out[i] = append([]string{strconv.FormatInt(id(registros[i]), 10)}, f...)
	}
	return out
}

func newParametrosListarCmd(a *app) *cobra.Command {
	var f criteriosFlags
	cmd := &cobra.Command{
		Use:   "listar <recurso>",
		Short: "Lista un parámetro con filtros de estado y columna",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recursoParametro(args[0])
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
			v, err := a.parametro.Listar(ctx, r, c)
			if err != nil {
				return err
			}
			return a.imprimirParametros(v)
		},
	}
	f.registrar(cmd, true)
	return cmd
}

func newParametrosEstadoCmd(a *app) *cobra.Command {
	var f criteriosFlags
	cmd := &cobra.Command{
		Use:   "estado <recurso> <id>",
		Short: "Activa o desactiva un registro y muestra el listado actualizado",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recursoParametro(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
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
			if !a.confirmar(fmt.Sprintf("¿Cambiar el estado de %s %d?", r.Nombre, id)) {
				fmt.Fprintln(a.out, "Cancelado")
				return nil
			}
			v, err := a.parametro.CambiarEstado(ctx, r, id, c)
			if err != nil {
				return err
			}
			return a.imprimirParametros(v)
		},
	}
	f.registrar(cmd, true)
	cmd.Flags().BoolVarP(&a.si, "yes", "y", false, "No pedir confirmación")
	return cmd
}

func newParametrosExportarCmd(a *app) *cobra.Command {
	var (
		f       criteriosFlags
		formato string
		salida  string
	)
	cmd := &cobra.Command{
		Use:   "exportar <recurso>",
		Short: "Exporta el listado a PDF (reporte del backend) o XLSX (vista filtrada)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recursoParametro(args[0])
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
			var datos []byte
			switch formato {
			case "pdf":
				datos, err = a.parametro.ExportarPDF(ctx, r, c.Estado)
			case "xlsx":
				datos, err = a.parametro.ExportarXLSX(ctx, r, c)
			default:
				return withCode(exitValidacion, fmt.Errorf("formato inválido %q: use pdf o xlsx", formato))
			}
			if err != nil {
				return err
			}
			if salida == "" {
				salida = r.Clave + "." + formato
			}
			return a.escribirArchivo(salida, datos)
		},
	}
	f.registrar(cmd, true)
	cmd.Flags().StringVar(&formato, "formato", "pdf", "pdf o xlsx")
	cmd.Flags().StringVarP(&salida, "output", "o", "", "Archivo de salida (por defecto <recurso>.<formato>)")
	return cmd
}
