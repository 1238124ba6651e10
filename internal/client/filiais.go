package client

import (
	"context"
	"fmt"

	"mototrack/internal/models"
	"mototrack/internal/query"
)

const filiaisPath = "/api/Filiais"

// FiliaisService provides CRUD access to the branch collection.
type FiliaisService struct {
	c *Client
}

// Filiais returns the branch facade.
func (c *Client) Filiais() *FiliaisService { return &FiliaisService{c: c} }

func (s *FiliaisService) List(ctx context.Context, f models.FilialFilter) ([]models.Filial, error) {
	var out []models.Filial
	if err := s.c.Get(ctx, filiaisPath, query.Filiais(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FiliaisService) Get(ctx context.Context, id int64) (*models.Filial, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out models.Filial
	if err := s.c.Get(ctx, fmt.Sprintf("%s/%d", filiaisPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FiliaisService) Create(ctx context.Context, f models.Filial) (*models.Filial, error) {
	if f.ID != 0 {
		return nil, &ValidationError{Message: "id is assigned by the server"}
	}
	if err := s.c.validatePayload(f); err != nil {
		return nil, err
	}
	var out models.Filial
	if err := s.c.Post(ctx, filiaisPath, f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FiliaisService) Update(ctx context.Context, id int64, f models.Filial) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.c.validatePayload(f); err != nil {
		return err
	}
	return s.c.Put(ctx, fmt.Sprintf("%s/%d", filiaisPath, id), f)
}

func (s *FiliaisService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.c.Delete(ctx, fmt.Sprintf("%s/%d", filiaisPath, id))
}
