package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Source supplies the course collection. The app consumes the directory
// service only through this interface.
type Source interface {
	FetchCourses(ctx context.Context) ([]Course, error)
}

// Client fetches courses from the directory API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: http.DefaultClient}
}

// FetchCourses issues GET /api/courses and decodes the JSON reply.
// Any non-2xx status or undecodable body is an error; an empty array is a
// valid collection. Unknown fields in the payload are ignored.
func (c *Client) FetchCourses(ctx context.Context) ([]Course, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/courses", nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("courses: http %d", resp.StatusCode)
	}
	var courses []Course
	if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
		return nil, fmt.Errorf("courses: decode: %w", err)
	}
	return courses, nil
}
