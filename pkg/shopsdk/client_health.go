package shopsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	h, err := call[HealthResponse](ctx, c, http.MethodGet, "/livez", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	h, err := call[HealthResponse](ctx, c, http.MethodGet, "/readyz", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
