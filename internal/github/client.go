package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jekwwer/repolint/pkg/labels"
)

const DefaultBaseURL = "https://api.github.com"

// Client talks to the GitHub REST API v3 for a single repository.
type Client struct {
	baseURL string
	owner   string
	repo    string
	token   string
	client  *http.Client
}

func NewClient(baseURL, owner, repo, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		owner:   owner,
		repo:    repo,
		token:   token,
		client:  &http.Client{},
	}
}

func (c *Client) labelsURL(name string) string {
	url := fmt.Sprintf("%s/repos/%s/%s/labels", c.baseURL, c.owner, c.repo)
	if name != "" {
		url += "/" + name
	}
	return url
}

func (c *Client) do(method, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func apiError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()
	payload, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(payload))
}

// ListLabels fetches every label currently defined on the repository,
// following pagination.
func (c *Client) ListLabels() ([]labels.Label, error) {
	var all []labels.Label
	url := c.labelsURL("") + "?per_page=100"

	for page := 1; ; page++ {
		resp, err := c.do(http.MethodGet, fmt.Sprintf("%s&page=%d", url, page), nil)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, apiError(resp)
		}

		var batch []labels.Label
		if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("failed to decode labels: %w", err)
		}
		_ = resp.Body.Close()

		all = append(all, batch...)
		if len(batch) < 100 {
			break
		}
	}

	return all, nil
}

func (c *Client) CreateLabel(label labels.Label) error {
	resp, err := c.do(http.MethodPost, c.labelsURL(""), label)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create label %q: %w", label.Name, apiError(resp))
	}
	_ = resp.Body.Close()
	return nil
}

func (c *Client) UpdateLabel(label labels.Label) error {
	body := map[string]string{
		"new_name":    label.Name,
		"color":       label.Color,
		"description": label.Description,
	}
	resp, err := c.do(http.MethodPatch, c.labelsURL(label.Name), body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to update label %q: %w", label.Name, apiError(resp))
	}
	_ = resp.Body.Close()
	return nil
}

func (c *Client) DeleteLabel(name string) error {
	resp, err := c.do(http.MethodDelete, c.labelsURL(name), nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("failed to delete label %q: %w", name, apiError(resp))
	}
	_ = resp.Body.Close()
	return nil
}
