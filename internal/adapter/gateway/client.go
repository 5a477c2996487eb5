// Package gateway holds the outbound clients for the FX/card issuer and the
// payment collection provider.
//
// Every failure is classified as ports.ErrGatewayRejected (the provider
// answered and did not act) or ports.ErrOutcomeUnknown (the provider may have
// acted). Nothing here retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fx-wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 1 << 20

// Doer is the part of *http.Client the gateways need.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CallObserver receives one observation per provider call. outcome is
// "ok", "rejected" or "unknown".
type CallObserver interface {
	ObserveGatewayCall(provider, op, outcome string, d time.Duration)
}

// Error describes a failed provider call.
type Error struct {
	Provider   string
	Op         string
	StatusCode int // 0 when no response was received
	Message    string
	Kind       error // ports.ErrGatewayRejected or ports.ErrOutcomeUnknown
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %v", e.Provider, e.Op, e.Kind)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (http %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// envelope is the response shape shared by both providers.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type apiClient struct {
	provider  string
	baseURL   string
	secretKey string
	http      Doer
	observer  CallObserver
	tracer    trace.Tracer
	log       zerolog.Logger
}

func newAPIClient(provider, baseURL, secretKey string, timeout time.Duration, doer Doer, observer CallObserver, log zerolog.Logger) *apiClient {
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	return &apiClient{
		provider:  provider,
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      doer,
		observer:  observer,
		tracer:    otel.Tracer("fx-wallet-ledger/gateway"),
		log:       log.With().Str("provider", provider).Logger(),
	}
}

// call sends a JSON request and decodes the envelope's data into out
// (which may be nil).
func (c *apiClient) call(ctx context.Context, op, method, path string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, c.provider+"."+op, trace.WithSpanKind(trace.SpanKindClient))
	start := time.Now()
	defer func() {
		outcome := outcomeOf(err)
		if c.observer != nil {
			c.observer.ObserveGatewayCall(c.provider, op, outcome, time.Since(start))
		}
		span.SetAttributes(attribute.String("gateway.outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
			c.log.Warn().Err(err).Str("op", op).Dur("took", time.Since(start)).Msg("Provider call failed")
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		raw, mErr := json.Marshal(body)
		if mErr != nil {
			return c.fail(op, 0, ports.ErrGatewayRejected, "", fmt.Errorf("encode request: %w", mErr))
		}
		reader = bytes.NewReader(raw)
	}

	req, rErr := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if rErr != nil {
		return c.fail(op, 0, ports.ErrGatewayRejected, "", fmt.Errorf("build request: %w", rErr))
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, dErr := c.http.Do(req)
	if dErr != nil {
		// Timeouts and broken connections: the request may have been processed.
		return c.fail(op, 0, ports.ErrOutcomeUnknown, "", dErr)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	switch {
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusRequestTimeout:
		return c.fail(op, resp.StatusCode, ports.ErrOutcomeUnknown, messageOf(raw), nil)
	case resp.StatusCode == http.StatusNotFound:
		return c.fail(op, resp.StatusCode, ports.ErrGatewayRejected, messageOf(raw), ports.ErrUnknownResource)
	case resp.StatusCode >= 400:
		return c.fail(op, resp.StatusCode, ports.ErrGatewayRejected, messageOf(raw), nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return c.fail(op, resp.StatusCode, ports.ErrOutcomeUnknown, "unexpected status", nil)
	}

	if readErr != nil {
		return c.fail(op, resp.StatusCode, ports.ErrOutcomeUnknown, "", fmt.Errorf("read response: %w", readErr))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return c.fail(op, resp.StatusCode, ports.ErrOutcomeUnknown, "", fmt.Errorf("decode response: %w", err))
	}
	if !env.Status {
		return c.fail(op, resp.StatusCode, ports.ErrGatewayRejected, env.Message, nil)
	}
	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return c.fail(op, resp.StatusCode, ports.ErrOutcomeUnknown, "response has no data", nil)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return c.fail(op, resp.StatusCode, ports.ErrOutcomeUnknown, "", fmt.Errorf("decode data: %w", err))
		}
	}
	return nil
}

func (c *apiClient) fail(op string, status int, kind error, message string, err error) *Error {
	return &Error{Provider: c.provider, Op: op, StatusCode: status, Message: message, Kind: kind, Err: err}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ports.ErrGatewayRejected):
		return "rejected"
	default:
		return "unknown"
	}
}

// messageOf pulls the provider's message out of an error body, if any.
func messageOf(raw []byte) string {
	var env envelope
	if json.Unmarshal(raw, &env) == nil && env.Message != "" {
		return env.Message
	}
	return ""
}
