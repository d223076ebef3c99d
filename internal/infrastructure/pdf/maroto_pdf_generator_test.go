package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func TestGenerarFicha(t *testing.T) {
	e := &entity.Edificio{ID: 1, Estado: entity.EstadoActivo, CreadoPor: &entity.UsuarioRef{Nombre: "Ana"}}
	e.Codigo = "ED-001"
	e.NombreEdificio = "Palacio municipal"
	e.Direccion = "Plaza principal s/n"
	e.ValorCompra = decimal.RequireFromString("250000")
	e.Latitud = "-17.39"
	e.Longitud = "-66.15"

	pdf, err := NewMarotoFichaGenerator("Gobierno municipal").GenerarFicha(context.Background(), e)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestValorCampo(t *testing.T) {
	assert.Equal(t, "Sí", valorCampo(entity.Campo{Tipo: entity.CampoBooleano, Valor: "true"}))
	assert.Equal(t, "No", valorCampo(entity.Campo{Tipo: entity.CampoBooleano, Valor: "false"}))
	assert.Equal(t, "20/05/2019", valorCampo(entity.Campo{Tipo: entity.CampoFecha, Valor: "2019-05-20"}))
	assert.Equal(t, "—", valorCampo(entity.Campo{Tipo: entity.CampoTexto}))
}

func TestQRData(t *testing.T) {
	e := &entity.Edificio{}
	assert.Equal(t, "EDIFICIO SIN-CODIGO", qrData(e))
	e.Codigo, e.Latitud, e.Longitud = "ED-9", "-17.3", "-66.1"
	assert.Equal(t, "EDIFICIO ED-9 geo:-17.3,-66.1", qrData(e))
}
