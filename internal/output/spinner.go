package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// Spin runs a blocking step behind a terminal spinner titled title.
// Off a terminal the step runs directly. Cancelling ctx stops waiting for
// the step; the step itself is expected to observe ctx too.
func Spin(ctx context.Context, title string, step func() error) error {
	if !IsTTY() {
		return step()
	}

	done := make(chan error, 1)
	go func() {
		done <- step()
	}()

	var stepErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			select {
			case stepErr = <-done:
			case <-ctx.Done():
				stepErr = ctx.Err()
			}
		}).
		Run()
	if err != nil && stepErr == nil {
		return fmt.Errorf("spinner: %w", err)
	}
	return stepErr
}
