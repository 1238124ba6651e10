package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mototrack/internal/models"
)

func newTestClient(baseURL string) *Client {
	return New(Config{BaseURL: baseURL, Timeout: 5 * time.Second}, zap.NewNop())
}

func TestMotosList(t *testing.T) {
	var gotPath, gotQuery, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode([]models.Moto{
			{ID: 1, Placa: models.String("ABC1D23")},
			{ID: 2, Modelo: models.String("Factor 150")},
		})
	}))
	defer srv.Close()

	motos, err := newTestClient(srv.URL).Motos().List(context.Background(), models.MotoFilter{Ano: 2020})
	require.NoError(t, err)
	require.Len(t, motos, 2)
	assert.Equal(t, int64(1), motos[0].ID)
	assert.Equal(t, "ABC1D23", *motos[0].Placa)
	assert.Equal(t, "/api/Motos", gotPath)
	assert.Equal(t, "ano=2020", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
}

func TestCreateRoundTrip(t *testing.T) {
	// Create assigns an id, a following Get returns the same fields.
	var stored models.Moto
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/Motos":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&stored))
			stored.ID = 42
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(stored)
		case r.Method == http.MethodGet && r.URL.Path == "/api/Motos/42":
			json.NewEncoder(w).Encode(stored)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	payload := models.Moto{
		Placa:  models.String("XYZ9A88"),
		Modelo: models.String("CB 500"),
		Ano:    models.Int(2022),
	}

	created, err := c.Motos().Create(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	fetched, err := c.Motos().Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "XYZ9A88", *fetched.Placa)
	assert.Equal(t, "CB 500", *fetched.Modelo)
	assert.Equal(t, 2022, *fetched.Ano)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Eventos/7" {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			if deleted {
				http.NotFound(w, r)
				return
			}
			json.NewEncoder(w).Encode(models.Evento{ID: 7})
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	require.NoError(t, c.Eventos().Delete(context.Background(), 7))

	_, err := c.Eventos().Get(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/api/Eventos/7", nf.Path)
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "placa duplicada", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Motos().Create(context.Background(), models.Moto{})
	require.Error(t, err)

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.StatusCode)
	assert.Equal(t, "placa duplicada", se.Message)
	assert.False(t, IsNetwork(err))
	assert.False(t, IsNotFound(err))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv.URL).Filiais().List(context.Background(), models.FilialFilter{})
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.False(t, IsCanceled(err))
}

func TestCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := newTestClient(srv.URL).Agendamentos().List(ctx, models.AgendamentoFilter{})
	require.Error(t, err)
	assert.True(t, IsCanceled(err))
	assert.False(t, IsNetwork(err))
}

func TestValidation(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	t.Run("non-positive id", func(t *testing.T) {
		_, err := c.Motos().Get(ctx, 0)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("id on create payload", func(t *testing.T) {
		_, err := c.Usuarios().Create(ctx, models.Usuario{ID: 3})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := c.Usuarios().Create(ctx, models.Usuario{Email: models.String("not-an-email")})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		err := c.Filiais().Update(ctx, 1, models.Filial{Latitude: models.Float(120)})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	// Validation failures never reach the transport.
	assert.Zero(t, requests)
}

func TestSetBaseURLIdempotent(t *testing.T) {
	var urls []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		urls = append(urls, r.URL.String())
		json.NewEncoder(w).Encode([]models.Usuario{})
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	c := newTestClient("http://unused.invalid")
	c.SetBaseURL(srv.URL)
	c.SetBaseURL(srv.URL)
	assert.Equal(t, srv.URL, c.BaseURL())

	filter := models.UsuarioFilter{Perfil: "admin", Limit: 5}
	for i := 0; i < 2; i++ {
		_, err := c.Usuarios().List(context.Background(), filter)
		require.NoError(t, err)
	}

	require.Len(t, urls, 2)
	assert.Equal(t, urls[0], urls[1])
}

func TestUpdateSendsNoBodyExpectation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/Agendamentos/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Agendamentos().Update(context.Background(), 5, models.Agendamento{
		DataHora: models.String("2025-09-01T10:00:00.000Z"),
		Status:   models.String("remarcado"),
	})
	assert.NoError(t, err)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/actuator/health" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"status":"UP"}`)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(srv.URL).Health(context.Background()))
}
