package suicli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// DefaultGasBudget is the gas budget used when none is configured.
const DefaultGasBudget uint64 = 1_000_000_000

// Client builds and runs sui client subcommands.
type Client struct {
	// Binary is the sui executable.
	Binary string

	// GasBudget is passed to every transaction command.
	GasBudget uint64

	// PackagePath is the Move package to publish. Empty means the working directory.
	PackagePath string

	Runner Runner
}

// NewClient returns a Client running binary through runner.
func NewClient(binary string, gasBudget uint64, runner Runner) *Client {
	if binary == "" {
		binary = "sui"
	}
	if gasBudget == 0 {
		gasBudget = DefaultGasBudget
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{Binary: binary, GasBudget: gasBudget, Runner: runner}
}

func (c *Client) budget() string {
	return strconv.FormatUint(c.GasBudget, 10)
}

// PublishArgs returns the arguments of the publish command.
func (c *Client) PublishArgs() []string {
	args := []string{"client", "publish", "--gas-budget", c.budget(), "--json"}
	if c.PackagePath != "" {
		args = append(args, c.PackagePath)
	}
	return args
}

// Publish publishes the Move package and parses the object changes.
func (c *Client) Publish(ctx context.Context) (*PublishResult, error) {
	args := c.PublishArgs()
	output.Debug("running", "cmd", commandLine(c.Binary, args))

	stdout, stderr, err := c.Runner.Run(ctx, c.Binary, args...)
	if err != nil {
		return nil, commandError(oerrors.ErrPublishCommand, "publish", err, stderr)
	}
	if len(stderr) > 0 {
		output.Debug("publish stderr", "output", strings.TrimSpace(string(stderr)))
	}

	return ParsePublishResult(stdout)
}

// TransferArgs returns the arguments of the transfer command.
func (c *Client) TransferArgs(to, objectID string) []string {
	return []string{"client", "transfer", "--to", to, "--object-id", objectID, "--gas-budget", c.budget()}
}

// Transfer moves objectID to the address to and returns the command output.
func (c *Client) Transfer(ctx context.Context, to, objectID string) (string, error) {
	args := c.TransferArgs(to, objectID)
	output.Debug("running", "cmd", commandLine(c.Binary, args))

	stdout, stderr, err := c.Runner.Run(ctx, c.Binary, args...)
	if err != nil {
		return string(stdout), commandError(oerrors.ErrTransferCommand, "transfer", err, stderr)
	}
	return string(stdout), nil
}

func commandError(sentinel error, what string, err error, stderr []byte) error {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return fmt.Errorf("%s: %w: %w", what, sentinel, err)
	}
	return fmt.Errorf("%s: %w: %w: %s", what, sentinel, err, msg)
}
