package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrRelayRejected is returned when the relay answers with a non-2xx status.
	ErrRelayRejected = errors.New("relay rejected submission")
	// ErrNoRelay is returned when no delivery channel is configured.
	ErrNoRelay = errors.New("no relay configured")
)

// Relay delivers a validated submission to the site owner.
type Relay interface {
	Send(ctx context.Context, sub Submission) error
}

// FormRelay posts submissions as JSON to a hosted form endpoint such as
// Formspree.
type FormRelay struct {
	endpoint string
	client   *http.Client
}

// NewFormRelay returns a relay posting to endpoint. A nil client gets a
// 10 second timeout.
func NewFormRelay(endpoint string, client *http.Client) *FormRelay {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FormRelay{endpoint: endpoint, client: client}
}

// Send implements Relay.
func (r *FormRelay) Send(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}
	return nil
}

type noRelay struct{}

func (noRelay) Send(context.Context, Submission) error {
	return ErrNoRelay
}
