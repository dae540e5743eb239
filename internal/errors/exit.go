package errors

// Exit codes returned by the pmc binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: unknown network, bad config.
	ExitValidationError = 2

	// ExitConnectivityError indicates the faucet or RPC endpoint failed.
	ExitConnectivityError = 3

	// ExitCommandFailed indicates the external publish or transfer command failed.
	ExitCommandFailed = 4

	// ExitNotFound indicates a missing UpgradeCap or deployment config file.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed indicates the error was already logged by the command layer.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the exit code derived from its sentinel.
func NewExitError(err error, printed bool) *ExitError {
	return &ExitError{Code: ExitCodeFromError(err), Err: err, Printed: printed}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case Is(err, ErrUnknownNetwork), Is(err, ErrValidation), Is(err, ErrKeyCollision):
		return ExitValidationError
	case Is(err, ErrFaucetRequest), Is(err, ErrMalformedRPCResponse):
		return ExitConnectivityError
	case Is(err, ErrPublishCommand), Is(err, ErrTransferCommand):
		return ExitCommandFailed
	case Is(err, ErrMissingUpgradeCap), Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitCommandFailed:
		return "Command Failed"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
