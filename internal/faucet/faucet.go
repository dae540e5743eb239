// Package faucet requests test tokens from a network faucet.
package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// Funder requests funds for a recipient.
type Funder interface {
	Fund(ctx context.Context, recipient string) (json.RawMessage, error)
}

type fixedAmountRequest struct {
	FixedAmountRequest struct {
		Recipient string `json:"recipient"`
	} `json:"FixedAmountRequest"`
}

// Client posts funding requests to a faucet endpoint.
type Client struct {
	url  string
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// NewClient returns a Client for the faucet at url.
// No request timeout is set; cancel ctx to abort.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{url: url, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fund sends one fixed-amount request for recipient and returns the raw
// response body. The body is not validated beyond being returned.
func (c *Client) Fund(ctx context.Context, recipient string) (json.RawMessage, error) {
	var body fixedAmountRequest
	body.FixedAmountRequest.Recipient = recipient

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding faucet request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrFaucetRequest, err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrFaucetRequest, err, "posting to "+c.url)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrFaucetRequest, err, "reading response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return data, fmt.Errorf("%w: %s returned %s: %s",
			oerrors.ErrFaucetRequest, c.url, resp.Status, bytes.TrimSpace(data))
	}

	return data, nil
}

// FundingOutcome records one funding attempt.
type FundingOutcome struct {
	Attempt  int
	Response json.RawMessage
	Err      error
	Duration time.Duration
}

// FundingReport records every attempt of a warm-up.
type FundingReport struct {
	Attempts []FundingOutcome
}

// Succeeded returns the number of attempts without error.
func (r *FundingReport) Succeeded() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Err == nil {
			n++
		}
	}
	return n
}

// Err joins the errors of all failed attempts, or returns nil.
func (r *FundingReport) Err() error {
	var errs []error
	for _, a := range r.Attempts {
		if a.Err != nil {
			errs = append(errs, fmt.Errorf("attempt %d: %w", a.Attempt, a.Err))
		}
	}
	return oerrors.Join(errs...)
}

// WarmUpOptions configures WarmUp.
type WarmUpOptions struct {
	// Attempts is the number of requests to send.
	Attempts int

	// RatePerSecond paces requests. Zero or less sends them back to back.
	RatePerSecond float64
}

// WarmUp sends opts.Attempts sequential funding requests to recipient.
// Every attempt is made regardless of earlier failures; only a cancelled
// context stops the loop early.
func WarmUp(ctx context.Context, f Funder, recipient string, opts WarmUpOptions) *FundingReport {
	report := &FundingReport{}
	log := output.StepLogger("faucet")

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)

	for i := 1; i <= opts.Attempts; i++ {
		if err := limiter.Wait(ctx); err != nil {
			report.Attempts = append(report.Attempts, FundingOutcome{Attempt: i, Err: err})
			break
		}

		start := time.Now()
		resp, err := f.Fund(ctx, recipient)
		outcome := FundingOutcome{
			Attempt:  i,
			Response: resp,
			Err:      err,
			Duration: time.Since(start),
		}
		report.Attempts = append(report.Attempts, outcome)

		if err != nil {
			log.Warn("funding request failed", "attempt", i, "recipient", recipient, "err", err)
			continue
		}
		log.Info("funded", "attempt", i, "recipient", recipient, "duration", outcome.Duration.Round(time.Millisecond))
		log.Debug("faucet response", "attempt", i, "body", string(resp))
	}

	return report
}
