package apiclient

import "time"

// envelope mirrors the {status, timestamp, data} wrapper the server puts
// around successful responses.
type envelope[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      T         `json:"data"`
	Error     string    `json:"error,omitempty"`
}

// getData performs a GET request to the given path and unwraps the response
// envelope, returning a pointer to the decoded payload.
//
// Example:
//
//	health, err := getData[HealthStatus](c, "/health")
func getData[T any](c *Client, path string) (*T, error) {
	var resp envelope[T]
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
