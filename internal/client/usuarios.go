package client

import (
	"context"
	"fmt"

	"mototrack/internal/models"
	"mototrack/internal/query"
)

const usuariosPath = "/api/Usuarios"

// UsuariosService provides CRUD access to the user collection.
type UsuariosService struct {
	c *Client
}

// Usuarios returns the user facade.
func (c *Client) Usuarios() *UsuariosService { return &UsuariosService{c: c} }

func (s *UsuariosService) List(ctx context.Context, f models.UsuarioFilter) ([]models.Usuario, error) {
	var out []models.Usuario
	if err := s.c.Get(ctx, usuariosPath, query.Usuarios(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UsuariosService) Get(ctx context.Context, id int64) (*models.Usuario, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out models.Usuario
	if err := s.c.Get(ctx, fmt.Sprintf("%s/%d", usuariosPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Create(ctx context.Context, u models.Usuario) (*models.Usuario, error) {
	if u.ID != 0 {
		return nil, &ValidationError{Message: "id is assigned by the server"}
	}
	if err := s.c.validatePayload(u); err != nil {
		return nil, err
	}
	var out models.Usuario
	if err := s.c.Post(ctx, usuariosPath, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Update(ctx context.Context, id int64, u models.Usuario) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.c.validatePayload(u); err != nil {
		return err
	}
	return s.c.Put(ctx, fmt.Sprintf("%s/%d", usuariosPath, id), u)
}

func (s *UsuariosService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.c.Delete(ctx, fmt.Sprintf("%s/%d", usuariosPath, id))
}
