package client

import (
	"context"
	"fmt"

	"mototrack/internal/models"
	"mototrack/internal/query"
)

const agendamentosPath = "/api/Agendamentos"

// AgendamentosService provides CRUD access to the appointment collection.
type AgendamentosService struct {
	c *Client
}

// Agendamentos returns the appointment facade.
func (c *Client) Agendamentos() *AgendamentosService { return &AgendamentosService{c: c} }

// List fetches appointments matching the filter; DataInicio/DataFim are
// normalized to canonical timestamps before the request is built.
func (s *AgendamentosService) List(ctx context.Context, f models.AgendamentoFilter) ([]models.Agendamento, error) {
	var out []models.Agendamento
	if err := s.c.Get(ctx, agendamentosPath, query.Agendamentos(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AgendamentosService) Get(ctx context.Context, id int64) (*models.Agendamento, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out models.Agendamento
	if err := s.c.Get(ctx, fmt.Sprintf("%s/%d", agendamentosPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AgendamentosService) Create(ctx context.Context, a models.Agendamento) (*models.Agendamento, error) {
	if a.ID != 0 {
		return nil, &ValidationError{Message: "id is assigned by the server"}
	}
	if err := s.c.validatePayload(a); err != nil {
		return nil, err
	}
	var out models.Agendamento
	if err := s.c.Post(ctx, agendamentosPath, a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AgendamentosService) Update(ctx context.Context, id int64, a models.Agendamento) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.c.validatePayload(a); err != nil {
		return err
	}
	return s.c.Put(ctx, fmt.Sprintf("%s/%d", agendamentosPath, id), a)
}

func (s *AgendamentosService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.c.Delete(ctx, fmt.Sprintf("%s/%d", agendamentosPath, id))
}
