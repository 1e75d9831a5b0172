// Package gemini provides an insights.Generator backed by the Google Gemini
// API.
package gemini

import (
	"context"
	"net/http"
	"time"

	"vantage/pkg/domain"
	"vantage/pkg/insights"
	"vantage/pkg/serrors"

	"github.com/go-faster/errors"
	"google.golang.org/genai"
)

// Options configures the Gemini client.
type Options struct {
	APIKey string
	Model  string
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client implements insights.Generator. It is safe for concurrent use.
type Client struct {
	client *genai.Client
	model  string
	now    func() time.Time
}

var _ insights.Generator = (*Client)(nil)

// New constructs a Client. An empty API key is rejected.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create genai client")
	}

	return &Client{client: client, model: model, now: time.Now}, nil
}

// Generate sends the rendered prompt to the model and parses its JSON answer.
func (c *Client) Generate(ctx context.Context, req insights.Request) (*domain.Insights, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(insights.BuildPrompt(req)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.4),
		})
	if err != nil {
		if isRateLimited(err) {
			return nil, serrors.Wrap(serrors.ErrRateLimited, err, "gemini quota exceeded")
		}

		return nil, errors.Wrap(err, "could not generate content")
	}

	out, err := insights.ParseResponse(resp.Text())
	if err != nil {
		return nil, err
	}
	out.Model = c.model
	out.GeneratedAt = c.now().UTC()

	return out, nil
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}

	return false
}
