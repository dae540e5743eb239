//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrUnknownNetwork, ErrFaucetRequest, ErrPublishCommand, ErrTransferCommand,
		ErrMalformedRPCResponse, ErrMissingUpgradeCap, ErrWrite, ErrKeyCollision,
		ErrValidation, ErrNotFound,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotEqual(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid object id",
		Location: "/deploy/testnet.json",
		Context:  map[string]string{"Network": "testnet", "Key": "UpgradeCap"},
		Hint:     "Object ids are 0x-prefixed hex",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: /deploy/testnet.json")
	assert.Contains(t, out, "Network: testnet")
	assert.Contains(t, out, "invalid object id")
	assert.Contains(t, out, "Hint: Object ids are 0x-prefixed hex")
	assert.Less(t, strings.Index(out, "Key: UpgradeCap"), strings.Index(out, "Network: testnet"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrWrite}

	assert.True(t, errors.Is(detail, ErrWrite))
	assert.Equal(t, ErrWrite, detail.Unwrap())
}

func TestNewUnknownNetworkError(t *testing.T) {
	err := NewUnknownNetworkError("devnet", []string{"localnet", "mainnet"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownNetwork))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Contains(t, detail.Message, `"devnet"`)
	assert.Contains(t, detail.Message, "localnet, mainnet")
}

func TestNewMissingUpgradeCapError(t *testing.T) {
	err := NewMissingUpgradeCapError("/deploy/localnet.json")
	assert.True(t, errors.Is(err, ErrMissingUpgradeCap))
	assert.Contains(t, err.Error(), "/deploy/localnet.json")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestWrapCause(t *testing.T) {
	cause := errors.New("exit status 1")
	wrapped := WrapCause(ErrPublishCommand, cause, "running sui client publish")

	assert.True(t, errors.Is(wrapped, ErrPublishCommand))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, "running sui client publish: publish command failed: exit status 1", wrapped.Error())
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil error returns success", err: nil, wantCode: ExitSuccess},
		{name: "unknown network", err: NewUnknownNetworkError("x", nil), wantCode: ExitValidationError},
		{name: "validation", err: Wrap(ErrValidation, "bad"), wantCode: ExitValidationError},
		{name: "key collision", err: ErrKeyCollision, wantCode: ExitValidationError},
		{name: "faucet", err: fmt.Errorf("attempt 1: %w", ErrFaucetRequest), wantCode: ExitConnectivityError},
		{name: "malformed rpc", err: ErrMalformedRPCResponse, wantCode: ExitConnectivityError},
		{name: "publish", err: ErrPublishCommand, wantCode: ExitCommandFailed},
		{name: "transfer", err: ErrTransferCommand, wantCode: ExitCommandFailed},
		{name: "missing upgrade cap", err: NewMissingUpgradeCapError(""), wantCode: ExitNotFound},
		{name: "write error is general", err: ErrWrite, wantCode: ExitGeneralError},
		{name: "explicit exit error", err: &ExitError{Code: 42, Err: errors.New("x")}, wantCode: 42},
		{name: "unknown error returns general error", err: errors.New("boom"), wantCode: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestNewExitError(t *testing.T) {
	err := NewExitError(Wrap(ErrPublishCommand, "publish"), true)

	assert.Equal(t, ExitCommandFailed, err.Code)
	assert.True(t, err.Printed)
	assert.True(t, errors.Is(err, ErrPublishCommand))
	assert.Equal(t, "Command Failed", ExitCodeName(err.Code))
}
