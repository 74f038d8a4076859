package copywriter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

type remoteWriter struct {
	client   *http.Client
	url      string
	apiKey   string
	fallback domain.CopyWriter
}

// NewRemoteWriter returns a CopyWriter that asks a generative-text endpoint
// for copy and falls back to the template writer when the call fails. The
// endpoint is expected to accept {"prompt": ...} and answer {"text": ...}.
func NewRemoteWriter(client *http.Client, url, apiKey string) domain.CopyWriter {
	if client == nil {
		client = http.DefaultClient
	}
	return &remoteWriter{
		client:   client,
		url:      url,
		apiKey:   apiKey,
		fallback: NewTemplateWriter(),
	}
}

func (w *remoteWriter) InvitationCopy(ctx context.Context, data domain.CopyContext) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, warm booking invitation from the talent agency %q to the artist %q (%s) for the show %q on %s at %s. Two sentences, no placeholders.",
		data.AgencyName, data.Artist.Name, data.Artist.Discipline,
		data.Event.Title, data.Event.Date, data.Event.VenueName)
	if text, err := w.generate(ctx, prompt); err == nil {
		return text, nil
	}
	return w.fallback.InvitationCopy(ctx, data)
}

func (w *remoteWriter) WelcomeCopy(ctx context.Context, data domain.CopyContext) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, warm welcome message from the talent agency %q to its new roster artist %q (%s). Two sentences, no placeholders.",
		data.AgencyName, data.Artist.Name, data.Artist.Discipline)
	if text, err := w.generate(ctx, prompt); err == nil {
		return text, nil
	}
	return w.fallback.WelcomeCopy(ctx, data)
}

func (w *remoteWriter) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("encode prompt: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+w.apiKey)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call copy endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("copy endpoint returned status: %d", resp.StatusCode)
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode copy response: %w", err)
	}
	if out.Text == "" {
		return "", fmt.Errorf("copy endpoint returned empty text")
	}
	return out.Text, nil
}
