package models

// Moto represents a motorcycle tracked by the backend. Every field except
// the server-assigned ID is optional; the API returns only what it has.
type Moto struct {
	ID     int64   `json:"id,omitempty"`
	Placa  *string `json:"placa,omitempty" validate:"omitempty,max=10"`
	Modelo *string `json:"modelo,omitempty" validate:"omitempty,max=100"`
	Marca  *string `json:"marca,omitempty" validate:"omitempty,max=100"`
	Ano    *int    `json:"ano,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Status *string `json:"status,omitempty" validate:"omitempty,max=50"`
}

// Filial represents a branch location.
type Filial struct {
	ID        int64    `json:"id,omitempty"`
	Nome      *string  `json:"nome,omitempty" validate:"omitempty,max=100"`
	Endereco  *string  `json:"endereco,omitempty" validate:"omitempty,max=200"`
	Bairro    *string  `json:"bairro,omitempty" validate:"omitempty,max=100"`
	Cidade    *string  `json:"cidade,omitempty" validate:"omitempty,max=100"`
	Estado    *string  `json:"estado,omitempty" validate:"omitempty,max=50"`
	CEP       *string  `json:"cep,omitempty" validate:"omitempty,max=12"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// Agendamento represents a scheduled maintenance appointment.
type Agendamento struct {
	ID       int64   `json:"id,omitempty"`
	DataHora *string `json:"dataHora,omitempty"`
	Status   *string `json:"status,omitempty" validate:"omitempty,max=50"`
}

// Evento represents a movement or status event for a motorcycle.
type Evento struct {
	ID          int64   `json:"id,omitempty"`
	Tipo        *string `json:"tipo,omitempty" validate:"omitempty,max=50"`
	DataHora    *string `json:"dataHora,omitempty"`
	Motivo      *string `json:"motivo,omitempty" validate:"omitempty,max=200"`
	Localizacao *string `json:"localizacao,omitempty" validate:"omitempty,max=200"`
}

// Usuario represents an application user.
type Usuario struct {
	ID     int64   `json:"id,omitempty"`
	Nome   *string `json:"nome,omitempty" validate:"omitempty,max=100"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Perfil *string `json:"perfil,omitempty" validate:"omitempty,max=50"`
}

// String returns a pointer to s, for building optional entity fields.
func String(s string) *string { return &s }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
