package client

import (
	"context"
	"fmt"

	"mototrack/internal/models"
	"mototrack/internal/query"
)

const eventosPath = "/api/Eventos"

// EventosService provides CRUD access to the event collection.
type EventosService struct {
	c *Client
}

// Eventos returns the event facade.
func (c *Client) Eventos() *EventosService { return &EventosService{c: c} }

func (s *EventosService) List(ctx context.Context, f models.EventoFilter) ([]models.Evento, error) {
	var out []models.Evento
	if err := s.c.Get(ctx, eventosPath, query.Eventos(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EventosService) Get(ctx context.Context, id int64) (*models.Evento, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out models.Evento
	if err := s.c.Get(ctx, fmt.Sprintf("%s/%d", eventosPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EventosService) Create(ctx context.Context, e models.Evento) (*models.Evento, error) {
	if e.ID != 0 {
		return nil, &ValidationError{Message: "id is assigned by the server"}
	}
	if err := s.c.validatePayload(e); err != nil {
		return nil, err
	}
	var out models.Evento
	if err := s.c.Post(ctx, eventosPath, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EventosService) Update(ctx context.Context, id int64, e models.Evento) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.c.validatePayload(e); err != nil {
		return err
	}
	return s.c.Put(ctx, fmt.Sprintf("%s/%d", eventosPath, id), e)
}

func (s *EventosService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.c.Delete(ctx, fmt.Sprintf("%s/%d", eventosPath, id))
}
