package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-consola/internal/application/dto"
	"github.com/jhoicas/activos-consola/internal/domain"
	"github.com/jhoicas/activos-consola/internal/domain/entity"
)

func TestValidarStruct_CamposConNombreJSON(t *testing.T) {
	err := dto.ValidarStruct(dto.UsuarioRequest{Correo: "no-es-correo", RolID: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	campos := dto.CamposInvalidos(err)
	assert.Equal(t, "correo inválido", campos["correo"])
	assert.Equal(t, "es requerido", campos["nombre"])
	assert.Contains(t, campos, "rolId")
}

func TestValidarStruct_DecimalNegativo(t *testing.T) {
	err := dto.ValidarStruct(entity.Condicion{SuperficieTerreno: decimal.NewFromInt(-3)})
	require.Error(t, err)
	assert.Contains(t, dto.CamposInvalidos(err), "superficie_terreno")

	assert.NoError(t, dto.ValidarStruct(entity.Condicion{SuperficieTerreno: decimal.RequireFromString("120.5")}))
}

func TestValidarStruct_Valido(t *testing.T) {
	assert.NoError(t, dto.ValidarStruct(dto.ParametroRequest{Codigo: "A-01", Descripcion: "Secretaría"}))
}
