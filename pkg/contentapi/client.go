// Package contentapi reads the content collections from the CRUD service's
// public HTTP API.
package contentapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/model"
)

// maxPayload caps a single collection response.
const maxPayload = 8 << 20

// Client fetches collections from BaseURL + "/<collection>". It never
// retries; a failed fetch is reported to the caller as is.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: &http.Client{Timeout: timeout}}
}

func (c *Client) get(ctx context.Context, collection string) ([]byte, error) {
	url := c.BaseURL + "/" + collection
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxPayload {
		return nil, fmt.Errorf("content api %s: payload exceeds %d bytes", collection, maxPayload)
	}
	if resp.StatusCode == http.StatusNotFound && collection == model.CollectionProfile {
		return []byte("null"), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content api %s returned non-200 status: %d", collection, resp.StatusCode)
	}
	return body, nil
}

func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	raw, err := c.get(ctx, model.CollectionProfile)
	if err != nil {
		return nil, err
	}
	return model.DecodeProfile(raw)
}

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	raw, err := c.get(ctx, model.CollectionProjects)
	if err != nil {
		return nil, err
	}
	return model.DecodeProjects(raw)
}

func (c *Client) Experience(ctx context.Context) ([]domain.Experience, error) {
	raw, err := c.get(ctx, model.CollectionExperience)
	if err != nil {
		return nil, err
	}
	return model.DecodeExperience(raw)
}

func (c *Client) Education(ctx context.Context) ([]domain.Education, error) {
	raw, err := c.get(ctx, model.CollectionEducation)
	if err != nil {
		return nil, err
	}
	return model.DecodeEducation(raw)
}

func (c *Client) Skills(ctx context.Context) ([]domain.Skill, error) {
	raw, err := c.get(ctx, model.CollectionSkills)
	if err != nil {
		return nil, err
	}
	return model.DecodeSkills(raw)
}

func (c *Client) Languages(ctx context.Context) ([]domain.Language, error) {
	raw, err := c.get(ctx, model.CollectionLanguages)
	if err != nil {
		return nil, err
	}
	return model.DecodeLanguages(raw)
}
