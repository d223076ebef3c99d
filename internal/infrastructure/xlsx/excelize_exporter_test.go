package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportarTabla(t *testing.T) {
	out, err := NewExcelizeExporter().ExportarTabla("Áreas",
		[]string{"Código", "Descripción"},
		[][]string{{"AR-01", "Tesorería"}, {"AR-02", "Catastro"}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Áreas")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Código", "Descripción"},
		{"AR-01", "Tesorería"},
		{"AR-02", "Catastro"},
	}, rows)
}

func TestExportarTabla_Vacia(t *testing.T) {
	out, err := NewExcelizeExporter().ExportarTabla("", nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Datos"}, f.GetSheetList())
}

func TestNombreHoja(t *testing.T) {
	assert.Equal(t, "Unidades organizacionales", nombreHoja("Unidades organizacionales"))
	assert.Equal(t, "a-b-c", nombreHoja("a/b:c"))
	assert.Len(t, []rune(nombreHoja("Un título demasiado largo para una hoja de excel")), 31)
}
