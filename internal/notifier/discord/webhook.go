package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/aleister1102/hookcord/internal/httpclient"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the API root webhook paths are appended to.
const DefaultBaseURL = "https://discord.com/api"

// RequestObserver is notified after every webhook request. A zero status
// code means the request never got a response.
type RequestObserver interface {
	ObserveRequest(method string, statusCode int, duration time.Duration, err error)
}

// WebhookInfo is the metadata returned by GET on a webhook.
type WebhookInfo struct {
	ID            string `json:"id"`
	Type          int    `json:"type"`
	GuildID       string `json:"guild_id,omitempty"`
	ChannelID     string `json:"channel_id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Token         string `json:"token,omitempty"` // incoming webhooks only
	ApplicationID string `json:"application_id,omitempty"`
}

// WebhookOption customizes a Webhook.
type WebhookOption func(*Webhook)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) WebhookOption {
	return func(w *Webhook) { w.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithAssembler replaces the default payload assembler.
func WithAssembler(assembler *Assembler) WebhookOption {
	return func(w *Webhook) { w.assembler = assembler }
}

// WithObserver attaches a request observer, typically metrics.
func WithObserver(observer RequestObserver) WebhookOption {
	return func(w *Webhook) { w.observer = observer }
}

// Webhook sends, fetches, updates and deletes a single webhook.
type Webhook struct {
	id        string
	token     string
	baseURL   string
	client    *httpclient.HTTPClient
	assembler *Assembler
	observer  RequestObserver
	logger    zerolog.Logger
}

// NewWebhook creates a webhook from its URL. The id and token are the last
// two path segments; nothing else about the URL is checked.
func NewWebhook(rawURL string, client *httpclient.HTTPClient, logger zerolog.Logger, opts ...WebhookOption) (*Webhook, error) {
	id, token, err := ParseWebhookURL(rawURL)
	if err != nil {
		return nil, err
	}

	moduleLogger := logger.With().Str("module", "DiscordWebhook").Str("webhook_id", id).Logger()

	if client == nil {
		moduleLogger.Debug().Msg("HTTP client is nil, using default HTTP client")
		client, err = httpclient.NewHTTPClientBuilder(logger).Build()
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to create default HTTP client")
		}
	}

	w := &Webhook{
		id:        id,
		token:     token,
		baseURL:   DefaultBaseURL,
		client:    client,
		assembler: NewAssembler(),
		logger:    moduleLogger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// ParseWebhookURL returns the id and token of a .../webhooks/{id}/{token} URL.
func ParseWebhookURL(rawURL string) (id, token string, err error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", "", errorwrapper.NewKindError(errorwrapper.ErrInvalidWebhookURL, "webhook_url", rawURL, err.Error())
	}

	var segments []string
	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) < 2 {
		return "", "", errorwrapper.NewKindError(errorwrapper.ErrInvalidWebhookURL, "webhook_url", rawURL,
			"webhook URL must end with /{id}/{token}")
	}

	return segments[len(segments)-2], segments[len(segments)-1], nil
}

// ID returns the webhook id.
func (w *Webhook) ID() string { return w.id }

// Token returns the webhook token.
func (w *Webhook) Token() string { return w.token }

// URL returns the endpoint every operation targets.
func (w *Webhook) URL() string {
	return w.baseURL + "/webhooks/" + w.id + "/" + w.token
}

// Execute assembles params into a payload and posts it.
func (w *Webhook) Execute(ctx context.Context, params ExecuteParams) (*httpclient.HTTPResponse, error) {
	payload, err := w.assembler.Assemble(params)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to assemble webhook payload")
		return nil, err
	}

	target := w.URL()
	if params.Wait {
		target += "?wait=true"
	}
	if len(params.Files) == 0 {
		return w.send(ctx, http.MethodPost, target, payload)
	}

	body, contentType, err := encodeMultipart(payload, params.Files)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to encode webhook attachments")
		return nil, err
	}
	w.logger.Debug().Int("attachments", len(params.Files)).Msg("Sending webhook payload with attachments")
	return w.do(ctx, http.MethodPost, target, body, contentType)
}

// Delete deletes the webhook.
func (w *Webhook) Delete(ctx context.Context) (*httpclient.HTTPResponse, error) {
	return w.send(ctx, http.MethodDelete, w.URL(), nil)
}

// webhookUpdate is the PATCH body; empty members are left unchanged.
type webhookUpdate struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Update changes the webhook's name and avatar. Empty arguments are omitted.
func (w *Webhook) Update(ctx context.Context, name, avatar string) (*httpclient.HTTPResponse, error) {
	return w.send(ctx, http.MethodPatch, w.URL(), webhookUpdate{Name: name, Avatar: avatar})
}

// Get fetches the webhook's metadata.
func (w *Webhook) Get(ctx context.Context) (*WebhookInfo, error) {
	resp, err := w.send(ctx, http.MethodGet, w.URL(), nil)
	if err != nil {
		return nil, err
	}

	var info WebhookInfo
	if err := json.Unmarshal(resp.Body, &info); err != nil {
		w.logger.Error().Err(err).Msg("Failed to decode webhook metadata")
		return nil, errorwrapper.WrapError(err, "failed to decode webhook metadata")
	}
	return &info, nil
}

// send performs one JSON request.
func (w *Webhook) send(ctx context.Context, method, target string, body any) (*httpclient.HTTPResponse, error) {
	var encoded []byte
	if body != nil {
		var err error
		if encoded, err = json.Marshal(body); err != nil {
			w.logger.Error().Err(err).Str("method", method).Msg("Failed to marshal webhook request body")
			return nil, errorwrapper.WrapError(err, "failed to marshal webhook request body")
		}
	}
	return w.do(ctx, method, target, encoded, "application/json")
}

// do performs one request. Non-2xx responses become *errorwrapper.HTTPError.
func (w *Webhook) do(ctx context.Context, method, target string, body []byte, contentType string) (*httpclient.HTTPResponse, error) {
	requestID := uuid.NewString()
	logger := w.logger.With().Str("request_id", requestID).Str("method", method).Logger()

	req := &httpclient.HTTPRequest{
		URL:     target,
		Method:  method,
		Headers: map[string]string{"Content-Type": contentType},
		Body:    body,
		Context: ctx,
		LogURL:  w.redact(target),
	}

	start := time.Now()
	resp, err := w.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		w.observe(method, 0, duration, err)
		logger.Error().Err(err).Dur("duration", duration).Msg("Webhook request failed")
		return nil, err
	}

	if !resp.IsSuccess() {
		httpErr := errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, string(resp.Body), w.redact(target))
		w.observe(method, resp.StatusCode, duration, httpErr)
		logger.Error().
			Int("status_code", resp.StatusCode).
			Str("response_body", string(resp.Body)).
			Dur("duration", duration).
			Msg("Webhook request rejected")
		return resp, httpErr
	}

	w.observe(method, resp.StatusCode, duration, nil)
	logger.Info().Int("status_code", resp.StatusCode).Dur("duration", duration).Msg("Webhook request succeeded")
	return resp, nil
}

func (w *Webhook) observe(method string, statusCode int, duration time.Duration, err error) {
	if w.observer != nil {
		w.observer.ObserveRequest(method, statusCode, duration, err)
	}
}

// redact hides the token in URLs that end up in errors and logs.
func (w *Webhook) redact(target string) string {
	return strings.ReplaceAll(target, "/"+w.token, "/<token>")
}
