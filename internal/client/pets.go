// Package client es el cliente tipado de la API de mascotas.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"petstore/internal/platform/httpclient"
)

var (
	ErrNotFound   = errors.New("pet not found")
	ErrBadRequest = errors.New("bad request")
)

type Pet struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, errors.New("client: base url required")
	}
	return &Client{http: hc}, nil
}

// GetPet hace GET /pet/{id}. Devuelve también el valor de x-pet-id.
func (c *Client) GetPet(ctx context.Context, id int) (Pet, string, error) {
	var p Pet
	resp, err := c.http.Do(ctx, http.MethodGet, "/pet/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return Pet{}, "", mapErr(err)
	}
	if err := decode(resp.Body, &p); err != nil {
		return Pet{}, "", err
	}
	return p, resp.Header.Get("x-pet-id"), nil
}

// AddPet hace POST /pet. El servidor responde 202 sin body.
func (c *Client) AddPet(ctx context.Context, p Pet) error {
	resp, err := c.http.Do(ctx, http.MethodPost, "/pet", nil, p)
	if err != nil {
		return mapErr(err)
	}
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("client: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func mapErr(err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		return err
	}
}

func decode(b []byte, out any) error {
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("client: decode: %w", err)
	}
	return nil
}
