package cmd

import (
	"fmt"
	"strings"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// fail logs err and wraps it with its exit code so main does not print it again.
func fail(err error) error {
	if err == nil {
		return nil
	}
	var detail *oerrors.DetailError
	if oerrors.As(err, &detail) {
		output.Error(detail.Type)
		output.Details(strings.TrimSpace(err.Error()))
	} else {
		output.Error(err.Error())
	}
	return oerrors.NewExitError(err, true)
}

// failf is fail with a formatted prefix.
func failf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fail(fmt.Errorf(format+": %w", append(args, err)...))
}
