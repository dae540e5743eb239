package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUnknownNetwork indicates a network identifier outside the known set.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrFaucetRequest indicates a faucet funding request failed.
	ErrFaucetRequest = errors.New("faucet request failed")

	// ErrPublishCommand indicates the publish command exited non-zero or
	// produced output that is not a publish result.
	ErrPublishCommand = errors.New("publish command failed")

	// ErrTransferCommand indicates the transfer command exited non-zero.
	ErrTransferCommand = errors.New("transfer command failed")

	// ErrMalformedRPCResponse indicates a JSON-RPC response without the expected shape.
	ErrMalformedRPCResponse = errors.New("malformed rpc response")

	// ErrMissingUpgradeCap indicates classification produced no UpgradeCap entry.
	ErrMissingUpgradeCap = errors.New("missing UpgradeCap")

	// ErrWrite indicates the deployment config could not be written.
	ErrWrite = errors.New("write error")

	// ErrKeyCollision indicates two created objects resolved to the same key.
	ErrKeyCollision = errors.New("configuration key collision")

	// ErrValidation indicates invalid configuration or deployment data.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or entry was not found.
	ErrNotFound = errors.New("not found")
)
