package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/activos-consola/internal/application/authz"
)

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// imprimirTabla tabla alineada con tabwriter. Sin filas muestra el placeholder de la consola.
func imprimirTabla(w io.Writer, encabezados []string, filas [][]string) error {
	if len(filas) == 0 {
		_, err := fmt.Fprintln(w, "No hay registros")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(encabezados, "\t"))
	for _, f := range filas {
		fmt.Fprintln(tw, strings.Join(limpiar(f), "\t"))
	}
	return tw.Flush()
}

func limpiar(celdas []string) []string {
	out := make([]string, len(celdas))
	for i, c := range celdas {
		out[i] = strings.NewReplacer("\t", " ", "\n", " ").Replace(c)
	}
	return out
}

func imprimirGrupos(w io.Writer, grupos []authz.GrupoPermisos) error {
	if len(grupos) == 0 {
		_, err := fmt.Fprintln(w, "Sin permisos asignados")
		return err
	}
	for _, g := range grupos {
		fmt.Fprintf(w, "%s (%d)\n", g.Modulo, len(g.Permisos))
		for _, p := range g.Permisos {
			if p.Descripcion != "" {
				fmt.Fprintf(w, "  %s  %s\n", p.Nombre, p.Descripcion)
				continue
			}
			fmt.Fprintf(w, "  %s\n", p.Nombre)
		}
	}
	return nil
}

// confirmar pregunta s/N por la entrada estándar; --yes la omite.
func (a *app) confirmar(pregunta string) bool {
	if a.si {
		return true
	}
	fmt.Fprintf(a.errOut, "%s [s/N]: ", pregunta)
	linea, _ := bufio.NewReader(a.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(linea)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}

// escribirArchivo guarda una exportación y avisa la ruta.
func (a *app) escribirArchivo(ruta string, datos []byte) error {
	if dir := filepath.Dir(ruta); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio: %w", err)
		}
	}
	if err := os.WriteFile(ruta, datos, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", ruta, err)
	}
	fmt.Fprintf(a.out, "Archivo generado: %s (%d bytes)\n", ruta, len(datos))
	return nil
}
