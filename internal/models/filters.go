package models

// Listing filters. The zero value of every field means "not set"; unset
// fields never reach the query string. Filters are built per call and
// discarded, nothing here is persisted.

// MotoFilter narrows a motorcycle listing.
type MotoFilter struct {
	Placa  string
	Modelo string
	Marca  string
	Ano    int
	Status string
	Sort   string
	Limit  int
	Offset int
}

// FilialFilter narrows a branch listing.
type FilialFilter struct {
	Nome   string
	Bairro string
	Cidade string
	Estado string
	Sort   string
	Limit  int
	Offset int
}

// AgendamentoFilter narrows an appointment listing.
type AgendamentoFilter struct {
	Status     string
	DataInicio DateValue
	DataFim    DateValue
	Sort       string
	Limit      int
	Offset     int
}

// EventoFilter narrows an event listing.
type EventoFilter struct {
	Tipo        string
	Motivo      string
	Localizacao string
	DataInicio  DateValue
	DataFim     DateValue
	Sort        string
	Limit       int
	Offset      int
}

// UsuarioFilter narrows a user listing.
type UsuarioFilter struct {
	Nome   string
	Email  string
	Perfil string
	Sort   string
	Limit  int
	Offset int
}
