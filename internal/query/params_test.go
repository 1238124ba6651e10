package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mototrack/internal/models"
)

// assertNoEmptyValues checks the compaction invariant: no parameter may
// carry an empty value.
func assertNoEmptyValues(t *testing.T, v url.Values) {
	t.Helper()
	for key, vals := range v {
		for _, val := range vals {
			assert.NotEmpty(t, val, "parameter %q has an empty value", key)
		}
	}
}

func TestMotos(t *testing.T) {
	t.Run("only set fields survive", func(t *testing.T) {
		v := Motos(models.MotoFilter{Ano: 2020})
		assert.Equal(t, url.Values{"ano": {"2020"}}, v)
	})

	t.Run("zero filter yields no parameters", func(t *testing.T) {
		v := Motos(models.MotoFilter{})
		assert.Empty(t, v)
	})

	t.Run("full filter", func(t *testing.T) {
		v := Motos(models.MotoFilter{
			Placa:  "ABC1D23",
			Modelo: "CG 160",
			Marca:  "Honda",
			Ano:    2021,
			Status: "disponivel",
			Sort:   "ano,desc",
			Limit:  20,
			Offset: 40,
		})
		assert.Equal(t, "ABC1D23", v.Get("placa"))
		assert.Equal(t, "CG 160", v.Get("modelo"))
		assert.Equal(t, "Honda", v.Get("marca"))
		assert.Equal(t, "2021", v.Get("ano"))
		assert.Equal(t, "disponivel", v.Get("status"))
		assert.Equal(t, "ano,desc", v.Get("sort"))
		assert.Equal(t, "20", v.Get("limit"))
		assert.Equal(t, "40", v.Get("offset"))
		assertNoEmptyValues(t, v)
	})
}

func TestAgendamentos(t *testing.T) {
	t.Run("iso date normalized, empty date dropped", func(t *testing.T) {
		v := Agendamentos(models.AgendamentoFilter{
			DataInicio: models.DateText("2024-01-05"),
			DataFim:    models.DateText(""),
		})
		assert.Equal(t, url.Values{"dataInicio": {"2024-01-05T00:00:00.000Z"}}, v)
	})

	t.Run("slash date normalized to the same calendar day", func(t *testing.T) {
		v := Agendamentos(models.AgendamentoFilter{
			DataInicio: models.DateText("05/01/2024"),
		})
		assert.Equal(t, "2024-01-05T00:00:00.000Z", v.Get("dataInicio"))
	})

	t.Run("unparseable date is absent, not empty", func(t *testing.T) {
		v := Agendamentos(models.AgendamentoFilter{
			Status:  "agendado",
			DataFim: models.DateText("yesterday-ish"),
		})
		_, present := v["dataFim"]
		assert.False(t, present)
		assert.Equal(t, "agendado", v.Get("status"))
		assertNoEmptyValues(t, v)
	})

	t.Run("time value", func(t *testing.T) {
		at := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
		v := Agendamentos(models.AgendamentoFilter{DataFim: models.DateAt(at)})
		assert.Equal(t, "2025-03-10T08:30:00.000Z", v.Get("dataFim"))
	})
}

func TestEventos(t *testing.T) {
	v := Eventos(models.EventoFilter{
		Tipo:       "saida",
		DataInicio: models.DateText("01/02/2024 06:00"),
		Limit:      10,
	})
	assert.Equal(t, "saida", v.Get("tipo"))
	assert.Equal(t, "2024-02-01T06:00:00.000Z", v.Get("dataInicio"))
	assert.Equal(t, "10", v.Get("limit"))
	assertNoEmptyValues(t, v)
}

func TestFiliaisAndUsuarios(t *testing.T) {
	t.Run("filiais", func(t *testing.T) {
		v := Filiais(models.FilialFilter{Cidade: "São Paulo", Estado: "SP"})
		assert.Equal(t, "São Paulo", v.Get("cidade"))
		assert.Equal(t, "SP", v.Get("estado"))
		assert.Len(t, v, 2)
	})

	t.Run("usuarios", func(t *testing.T) {
		v := Usuarios(models.UsuarioFilter{Perfil: "admin", Sort: "nome,asc"})
		assert.Equal(t, "admin", v.Get("perfil"))
		assert.Equal(t, "nome,asc", v.Get("sort"))
		assert.Len(t, v, 2)
	})
}

func TestNormalizeDate(t *testing.T) {
	iso, ok := NormalizeDate(models.DateText("15/08/2024 18:45:30"))
	require.True(t, ok)
	assert.Equal(t, "2024-08-15T18:45:30.000Z", iso)

	_, ok = NormalizeDate(models.DateValue{})
	assert.False(t, ok)
}
