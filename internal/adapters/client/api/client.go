package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"lightnote/internal/config"
	"net/http"
	"time"
)

// Client talks to the note service over its v1 HTTP API. It is the capture
// path: one shot per call, no retry, no queue — a failed save is reported
// and the user re-triggers.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the configured backend address
func NewClient(cfg config.ClipConfig) *Client {
	return &Client{
		baseURL:    cfg.APIURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SaveNoteRequest is the capture payload
type SaveNoteRequest struct {
	Content     string   `json:"content"`
	SourceURL   string   `json:"sourceUrl"`
	SourceTitle *string  `json:"sourceTitle,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Note is the wire shape returned by the service
type Note struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	SourceURL   string    `json:"sourceUrl"`
	SourceTitle *string   `json:"sourceTitle,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []Tag     `json:"tags"`
}

// Tag is the wire shape of a tag
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type noteEnvelope struct {
	Success bool   `json:"success"`
	Note    Note   `json:"note"`
	Error   string `json:"error"`
}

type listEnvelope struct {
	Notes []Note `json:"notes"`
	Error string `json:"error"`
}

// SaveNote submits a captured selection as a new note
func (c *Client) SaveNote(ctx context.Context, req SaveNoteRequest) (*Note, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/notes", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("lightnote service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var envelope noteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusCreated || !envelope.Success {
		if envelope.Error != "" {
			return nil, fmt.Errorf("save failed: %s", envelope.Error)
		}
		return nil, fmt.Errorf("save failed with status %d", resp.StatusCode)
	}

	return &envelope.Note, nil
}

// ListNotes fetches all notes, newest first
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/notes", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("lightnote service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if envelope.Error != "" {
			return nil, fmt.Errorf("list failed: %s", envelope.Error)
		}
		return nil, fmt.Errorf("list failed with status %d", resp.StatusCode)
	}

	return envelope.Notes, nil
}
