package faucet

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

const recipient = "0x43888ff633a296d4d87026ee10a4d9f3ca649ea3403190a45ddd9712948d73cb"

func TestClientFund(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &gotBody))
		_, _ = w.Write([]byte(`{"transferredGasObjects":[{"amount":1000}],"error":null}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Fund(context.Background(), recipient)

	require.NoError(t, err)
	assert.JSONEq(t, `{"transferredGasObjects":[{"amount":1000}],"error":null}`, string(resp))
	assert.Equal(t, map[string]any{
		"FixedAmountRequest": map[string]any{"recipient": recipient},
	}, gotBody)
}

func TestClientFund_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fund(context.Background(), recipient)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrFaucetRequest)
	assert.Contains(t, err.Error(), "429")
}

func TestClientFund_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Fund(context.Background(), recipient)

	assert.ErrorIs(t, err, oerrors.ErrFaucetRequest)
	assert.Equal(t, oerrors.ExitConnectivityError, oerrors.ExitCodeFromError(err))
}

type fakeFunder struct {
	calls atomic.Int32
	fail  map[int]bool
}

func (f *fakeFunder) Fund(_ context.Context, _ string) (json.RawMessage, error) {
	n := int(f.calls.Add(1))
	if f.fail[n] {
		return nil, oerrors.ErrFaucetRequest
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func TestWarmUp_RunsEveryAttempt(t *testing.T) {
	f := &fakeFunder{fail: map[int]bool{1: true, 3: true}}

	report := WarmUp(context.Background(), f, recipient, WarmUpOptions{Attempts: 5})

	assert.Equal(t, int32(5), f.calls.Load())
	require.Len(t, report.Attempts, 5)
	assert.Equal(t, 3, report.Succeeded())
	for i, a := range report.Attempts {
		assert.Equal(t, i+1, a.Attempt)
	}

	err := report.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrFaucetRequest)
	assert.Contains(t, err.Error(), "attempt 1")
	assert.Contains(t, err.Error(), "attempt 3")
}

func TestWarmUp_AllSucceed(t *testing.T) {
	f := &fakeFunder{}

	report := WarmUp(context.Background(), f, recipient, WarmUpOptions{Attempts: 3, RatePerSecond: 1000})

	assert.Equal(t, 3, report.Succeeded())
	assert.NoError(t, report.Err())
}

func TestWarmUp_ZeroAttempts(t *testing.T) {
	f := &fakeFunder{}

	report := WarmUp(context.Background(), f, recipient, WarmUpOptions{})

	assert.Empty(t, report.Attempts)
	assert.Zero(t, f.calls.Load())
	assert.NoError(t, report.Err())
}

func TestWarmUp_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakeFunder{}

	report := WarmUp(ctx, f, recipient, WarmUpOptions{Attempts: 5, RatePerSecond: 0.001})

	require.Len(t, report.Attempts, 1)
	assert.True(t, errors.Is(report.Attempts[0].Err, context.Canceled))
	assert.Zero(t, f.calls.Load())
}
