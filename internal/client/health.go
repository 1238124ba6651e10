package client

import "context"

const healthPath = "/actuator/health"

// Health checks whether the backend is reachable. Any 2xx answer counts
// as healthy; the response body is ignored.
func (c *Client) Health(ctx context.Context) error {
	return c.Get(ctx, healthPath, nil, nil)
}
