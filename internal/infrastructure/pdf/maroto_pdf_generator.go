// Package pdf genera la ficha técnica de un edificio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del edificio + código  │  Estado + fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: título                                             │
//	│    etiqueta │ valor        etiqueta │ valor                   │
//	│  ... una por cada sección del registro ...                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR (código / coordenadas) + auditoría               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/activos-consola/internal/application/usecase"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

var _ usecase.FichaGenerator = (*MarotoFichaGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFichaGenerator implementa usecase.FichaGenerator usando Maroto v2.
type MarotoFichaGenerator struct {
	institucion string
	now         func() time.Time
}

// NewMarotoFichaGenerator construye el generador. institucion aparece como autor del documento.
func NewMarotoFichaGenerator(institucion string) *MarotoFichaGenerator {
	return &MarotoFichaGenerator{institucion: institucion, now: time.Now}
}

// GenerarFicha genera el PDF y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerarFicha(_ context.Context, e *entity.Edificio) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha técnica "+e.Codigo, true).
		WithAuthor(nonEmpty(g.institucion, "Gestión de activos"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(e, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range e.Secciones() {
		m.AddRows(seccionRows(s)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(e)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y código (izq), estado y fecha de emisión (der).
func headerRow(e *entity.Edificio, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(nonEmpty(e.NombreEdificio, "Edificio sin nombre"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+nonEmpty(e.Codigo, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("FICHA TÉCNICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(string(e.Estado), "—"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// seccionRows: título de la sección y sus campos en dos columnas etiqueta/valor.
func seccionRows(s entity.Seccion) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(s.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
			}),
		)),
	}
	campos := entity.Campos(s.Datos)
	for i := 0; i < len(campos); i += 2 {
		r := row.New(5)
		r.Add(campoCols(campos[i])...)
		if i+1 < len(campos) {
			r.Add(campoCols(campos[i+1])...)
		} else {
			r.Add(col.New(6))
		}
		rows = append(rows, r)
	}
	return rows
}

func campoCols(c entity.Campo) []core.Col {
	return []core.Col{
		col.New(3).Add(text.New(c.Etiqueta+":", props.Text{
			Style: fontstyle.Bold, Size: 7.5, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(valorCampo(c), props.Text{
			Size: 7.5, Top: 1, Color: colorGray,
		})),
	}
}

// footerRows: QR con el código (y coordenadas si existen) más datos de auditoría.
func footerRows(e *entity.Edificio) []core.Row {
	auditoria := "Registrado por: " + nombreRef(e.CreadoPor)
	if e.ActualizadoPor != nil {
		auditoria += "   |   Última modificación: " + nombreRef(e.ActualizadoPor)
	}
	return []core.Row{
		row.New(40).Add(
			col.New(3).Add(code.NewQr(qrData(e), props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New(auditoria, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
				text.New("Documento informativo generado desde la consola de activos. "+
					"Los datos vigentes son los registrados en el sistema.", props.Text{
					Size: 6.5, Top: 14, Left: 3, Color: colorGray,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func qrData(e *entity.Edificio) string {
	if e.Latitud != "" && e.Longitud != "" {
		return fmt.Sprintf("EDIFICIO %s geo:%s,%s", e.Codigo, e.Latitud, e.Longitud)
	}
	return "EDIFICIO " + nonEmpty(e.Codigo, "SIN-CODIGO")
}

func valorCampo(c entity.Campo) string {
	switch c.Tipo {
	case entity.CampoBooleano:
		if c.Valor == "true" {
			return "Sí"
		}
		return "No"
	case entity.CampoFecha:
		if t, err := time.Parse(time.DateOnly, c.Valor); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return nonEmpty(c.Valor, "—")
}

func nombreRef(u *entity.UsuarioRef) string {
	if u == nil {
		return "—"
	}
	return nonEmpty(u.Nombre, u.Correo)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
