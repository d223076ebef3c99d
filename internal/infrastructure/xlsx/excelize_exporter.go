// Package xlsx exporta vistas de listado a hojas de cálculo.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/activos-consola/internal/application/usecase"
)

var _ usecase.TablaExporter = (*ExcelizeExporter)(nil)

const maxNombreHoja = 31

// ExcelizeExporter implementa usecase.TablaExporter con xuri/excelize.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportarTabla escribe una hoja con encabezados en negrita, filtro automático y panel fijo.
func (x *ExcelizeExporter) ExportarTabla(titulo string, encabezados []string, filas [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	hoja := nombreHoja(titulo)
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}

	if err := f.SetSheetRow(hoja, "A1", aFila(encabezados)); err != nil {
		return nil, fmt.Errorf("xlsx: encabezados: %w", err)
	}
	for i, fila := range filas {
		celda, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(hoja, celda, aFila(fila)); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	if len(encabezados) > 0 {
		ultima, _ := excelize.ColumnNumberToName(len(encabezados))
		estilo, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		})
		if err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
		if err := f.SetCellStyle(hoja, "A1", ultima+"1", estilo); err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
		if err := f.SetColWidth(hoja, "A", ultima, 22); err != nil {
			return nil, fmt.Errorf("xlsx: ancho: %w", err)
		}
		rango := fmt.Sprintf("A1:%s%d", ultima, len(filas)+1)
		if err := f.AutoFilter(hoja, rango, nil); err != nil {
			return nil, fmt.Errorf("xlsx: filtro: %w", err)
		}
		if err := f.SetPanes(hoja, &excelize.Panes{
			Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
		}); err != nil {
			return nil, fmt.Errorf("xlsx: panel: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func aFila(celdas []string) *[]any {
	out := make([]any, len(celdas))
	for i, c := range celdas {
		out[i] = c
	}
	return &out
}

// nombreHoja limpia el título: sin caracteres prohibidos y con el largo máximo de excel.
func nombreHoja(titulo string) string {
	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(titulo))
	if s == "" {
		s = "Datos"
	}
	if r := []rune(s); len(r) > maxNombreHoja {
		s = string(r[:maxNombreHoja])
	}
	return s
}
