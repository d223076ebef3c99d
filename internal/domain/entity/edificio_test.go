package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdificio_JSONPlano(t *testing.T) {
	var e Edificio
	e.Codigo = "ED-1"
	e.Direccion = "Calle 1"
	e.ValorCompra = decimal.RequireFromString("1200.50")
	e.NumeroPisos = 3
	e.TieneAgua = true

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var plano map[string]any
	require.NoError(t, json.Unmarshal(raw, &plano))
	assert.Equal(t, "ED-1", plano["codigo"])
	assert.Equal(t, "Calle 1", plano["direccion"])
	assert.Equal(t, "1200.5", plano["valor_compra"])
	assert.Equal(t, "3", plano["numero_pisos"], "los números viajan como texto")
	assert.Equal(t, true, plano["tiene_agua"])
	assert.NotContains(t, plano, "anio_construccion", "enteros en cero se omiten")
	assert.NotContains(t, plano, "Identificacion", "las secciones no anidan")
	assert.NotContains(t, plano, "id", "id vacío se omite al crear")
}

func TestEdificio_LeeBolsaDelBackend(t *testing.T) {
	raw := `{
		"id": 4, "estado": "ACTIVO", "codigo": "E-1", "nombre_edificio": "Alcaldía",
		"numero_pisos": "3", "anio_construccion": "", "vida_util": 40, "auxiliar_id": null,
		"valor_compra": "", "superficie_terreno": "350.75", "superficie_construida": 120,
		"tiene_agua": true, "tiene_luz": "true", "saneado": "",
		"latitud": "-17.39", "zona": " Centro ", "creado_por": {"id": 1, "nombre": "Ana"},
		"campo_desconocido": "x"
	}`

	var e Edificio
	require.NoError(t, json.Unmarshal([]byte(raw), &e))

	assert.Equal(t, int64(4), e.ID)
	assert.Equal(t, EstadoActivo, e.Estado)
	assert.Equal(t, "E-1", e.Codigo)
	assert.Equal(t, 3, e.NumeroPisos)
	assert.Equal(t, 0, e.AnioConstruccion)
	assert.Equal(t, 40, e.VidaUtil)
	assert.Equal(t, int64(0), e.AuxiliarID)
	assert.True(t, e.ValorCompra.IsZero())
	assert.Equal(t, "350.75", e.SuperficieTerreno.String())
	assert.Equal(t, "120", e.SuperficieConstruida.String())
	assert.True(t, e.TieneAgua)
	assert.True(t, e.TieneLuz)
	assert.False(t, e.Saneado)
	assert.Equal(t, "-17.39", e.Latitud)
	assert.Equal(t, " Centro ", e.Zona, "el texto llega sin tocar")
	require.NotNil(t, e.CreadoPor)
	assert.Equal(t, "Ana", e.CreadoPor.Nombre)
}

func TestEdificio_ValorNumericoInvalido(t *testing.T) {
	var e Edificio
	err := json.Unmarshal([]byte(`{"codigo":"E-1","numero_pisos":"tres"}`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numero_pisos")
}

func TestEdificio_IdaYVuelta(t *testing.T) {
	var e Edificio
	e.ID = 9
	e.Codigo = "E-9"
	e.VidaUtil = 25
	e.SuperficieTerreno = decimal.RequireFromString("10.5")
	e.Depreciable = true

	raw, err := json.Marshal(&e)
	require.NoError(t, err)

	var otro Edificio
	require.NoError(t, json.Unmarshal(raw, &otro))
	assert.Equal(t, e.ID, otro.ID)
	assert.Equal(t, e.Codigo, otro.Codigo)
	assert.Equal(t, 25, otro.VidaUtil)
	assert.True(t, e.SuperficieTerreno.Equal(otro.SuperficieTerreno))
	assert.True(t, otro.Depreciable)
}

func TestCampos(t *testing.T) {
	var e Edificio
	e.NumeroPisos = 3
	e.TieneAgua = true

	campos := Campos(&e.Condicion)
	porClave := map[string]Campo{}
	for _, c := range campos {
		porClave[c.Clave] = c
	}

	assert.Equal(t, "estado_conservacion", campos[0].Clave, "orden de declaración")
	assert.Equal(t, CampoOpciones, porClave["estado_conservacion"].Tipo)
	assert.Equal(t, []string{"BUENO", "REGULAR", "MALO"}, porClave["estado_conservacion"].Opciones)
	assert.Equal(t, CampoDecimal, porClave["superficie_terreno"].Tipo)
	assert.Equal(t, "0", porClave["superficie_terreno"].Valor)
	assert.Equal(t, "3", porClave["numero_pisos"].Valor)
	assert.Equal(t, "", porClave["anio_construccion"].Valor)
	assert.Equal(t, "true", porClave["tiene_agua"].Valor)

	id := Campos(&e.Identificacion)
	assert.True(t, id[0].Requerido)
	assert.Equal(t, "Código", id[0].Etiqueta)

	legales := Campos(e.DatosLegales)
	for _, c := range legales {
		if c.Clave == "fecha_testimonio" {
			assert.Equal(t, CampoFecha, c.Tipo)
		}
	}
}

func TestSecciones_ApuntanAlEdificio(t *testing.T) {
	var e Edificio
	secs := e.Secciones()
	require.Len(t, secs, 8)

	secs[0].Datos.(*Identificacion).Codigo = "X"
	assert.Equal(t, "X", e.Codigo)
}
