// Package query builds compacted query-parameter sets for listing calls.
// Builders are pure: they never touch the network, never mutate their
// input and never fail — values that cannot be used are simply dropped.
package query

import (
	"net/url"
	"strconv"

	"mototrack/internal/models"
)

// isoFormat is the canonical timestamp sent to the backend.
const isoFormat = "2006-01-02T15:04:05.000Z"

// NormalizeDate converts a date-like filter value to the canonical UTC
// timestamp string. ok=false means the value was unset or unparseable and
// the parameter must be omitted.
func NormalizeDate(d models.DateValue) (string, bool) {
	t, ok := d.Resolve()
	if !ok {
		return "", false
	}
	return t.UTC().Format(isoFormat), true
}

func setText(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func setInt(v url.Values, key string, n int) {
	if n > 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setDate(v url.Values, key string, d models.DateValue) {
	if iso, ok := NormalizeDate(d); ok {
		v.Set(key, iso)
	}
}

func setPage(v url.Values, sort string, limit, offset int) {
	setText(v, "sort", sort)
	setInt(v, "limit", limit)
	setInt(v, "offset", offset)
}

// Motos maps a MotoFilter to query parameters.
func Motos(f models.MotoFilter) url.Values {
	v := url.Values{}
	setText(v, "placa", f.Placa)
	setText(v, "modelo", f.Modelo)
	setText(v, "marca", f.Marca)
	setInt(v, "ano", f.Ano)
	setText(v, "status", f.Status)
	setPage(v, f.Sort, f.Limit, f.Offset)
	return v
}

// Filiais maps a FilialFilter to query parameters.
func Filiais(f models.FilialFilter) url.Values {
	v := url.Values{}
	setText(v, "nome", f.Nome)
	setText(v, "bairro", f.Bairro)
	setText(v, "cidade", f.Cidade)
	setText(v, "estado", f.Estado)
	setPage(v, f.Sort, f.Limit, f.Offset)
	return v
}

// Agendamentos maps an AgendamentoFilter to query parameters.
func Agendamentos(f models.AgendamentoFilter) url.Values {
	v := url.Values{}
	setText(v, "status", f.Status)
	setDate(v, "dataInicio", f.DataInicio)
	setDate(v, "dataFim", f.DataFim)
	setPage(v, f.Sort, f.Limit, f.Offset)
	return v
}

// Eventos maps an EventoFilter to query parameters.
func Eventos(f models.EventoFilter) url.Values {
	v := url.Values{}
	setText(v, "tipo", f.Tipo)
	setText(v, "motivo", f.Motivo)
	setText(v, "localizacao", f.Localizacao)
	setDate(v, "dataInicio", f.DataInicio)
	setDate(v, "dataFim", f.DataFim)
	setPage(v, f.Sort, f.Limit, f.Offset)
	return v
}

// Usuarios maps a UsuarioFilter to query parameters.
func Usuarios(f models.UsuarioFilter) url.Values {
	v := url.Values{}
	setText(v, "nome", f.Nome)
	setText(v, "email", f.Email)
	setText(v, "perfil", f.Perfil)
	setPage(v, f.Sort, f.Limit, f.Offset)
	return v
}
