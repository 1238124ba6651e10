package client

import (
	"context"
	"fmt"

	"mototrack/internal/models"
	"mototrack/internal/query"
)

const motosPath = "/api/Motos"

// MotosService provides CRUD access to the motorcycle collection.
type MotosService struct {
	c *Client
}

// Motos returns the motorcycle facade.
func (c *Client) Motos() *MotosService { return &MotosService{c: c} }

// List fetches motorcycles matching the filter. The zero filter lists all.
func (s *MotosService) List(ctx context.Context, f models.MotoFilter) ([]models.Moto, error) {
	var out []models.Moto
	if err := s.c.Get(ctx, motosPath, query.Motos(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single motorcycle by id.
func (s *MotosService) Get(ctx context.Context, id int64) (*models.Moto, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out models.Moto
	if err := s.c.Get(ctx, fmt.Sprintf("%s/%d", motosPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new motorcycle and returns it with the server-assigned id.
func (s *MotosService) Create(ctx context.Context, m models.Moto) (*models.Moto, error) {
	if m.ID != 0 {
		return nil, &ValidationError{Message: "id is assigned by the server"}
	}
	if err := s.c.validatePayload(m); err != nil {
		return nil, err
	}
	var out models.Moto
	if err := s.c.Post(ctx, motosPath, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the motorcycle with the given id.
func (s *MotosService) Update(ctx context.Context, id int64, m models.Moto) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.c.validatePayload(m); err != nil {
		return err
	}
	return s.c.Put(ctx, fmt.Sprintf("%s/%d", motosPath, id), m)
}

// Delete removes the motorcycle with the given id.
func (s *MotosService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.c.Delete(ctx, fmt.Sprintf("%s/%d", motosPath, id))
}
