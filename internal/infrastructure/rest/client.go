package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client cliente HTTP del backend Invorax. Adjunta la credencial bearer vigente
// y un X-Request-ID por petición. La credencial es estado compartido con regla
// de único escritor: solo el session.Manager la muta, vía SetToken/ClearToken,
// y cada mutación reemplaza el valor completo.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient construye el cliente. baseURL sin slash final, ej.
// https://api.invorax.com/api.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken reemplaza la credencial bearer adjunta a las peticiones salientes.
func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

// ClearToken retira la credencial bearer.
func (c *Client) ClearToken() { c.SetToken("") }

// APIError error devuelto por el backend, con el mensaje ya extraído del cuerpo.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// do ejecuta una petición JSON y devuelve el cuerpo crudo de la respuesta.
// Un status >= 400 se convierte en *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.mu.RLock()
	tok := c.token
	c.mu.RUnlock()
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("petición %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta %s %s: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("respuesta de error del backend")
		return nil, &APIError{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	return data, nil
}

// getOne decodifica la respuesta de un GET de detalle. Un 404 se traduce a
// (nil, nil) para que el caso de uso decida.
func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		var apiErr *APIError
		if asAPIError(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return out, nil
}

// getList decodifica un listado. Acepta tanto un arreglo plano como el sobre
// paginado de Django {count, next, previous, results}.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](data, path)
}

// postOne envía un POST y decodifica la entidad creada.
func postOne[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return out, nil
}

// putOne envía un PUT y decodifica la entidad actualizada.
func putOne[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	data, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return out, nil
}

// del envía un DELETE; el backend responde 204 sin cuerpo.
func (c *Client) del(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func decodeList[T any](data []byte, path string) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decodificar listado de %s: %w", path, err)
		}
		return items, nil
	}
	var page struct {
		Count   int `json:"count"`
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decodificar listado paginado de %s: %w", path, err)
	}
	return page.Results, nil
}
