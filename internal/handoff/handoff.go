// Package handoff transfers ownership of a published package to the treasury.
package handoff

import (
	"context"
	"strings"

	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// Transferrer moves an object to another address.
type Transferrer interface {
	Transfer(ctx context.Context, to, objectID string) (string, error)
}

// Handoff sends the UpgradeCap of a deployment to the treasury address.
type Handoff struct {
	Transferrer Transferrer
	Treasury    string
}

// TransferUpgradeCap transfers cfg's UpgradeCap and returns the command
// output. Without an UpgradeCap entry nothing is run.
func (h *Handoff) TransferUpgradeCap(ctx context.Context, cfg deployconfig.DeploymentConfig) (string, error) {
	capID, ok := cfg[deployconfig.KeyUpgradeCap]
	if !ok || capID == "" {
		return "", oerrors.NewMissingUpgradeCapError("")
	}

	log := output.StepLogger("handoff")
	log.Info("transferring UpgradeCap", "object", capID, "to", h.Treasury)

	out, err := h.Transferrer.Transfer(ctx, h.Treasury, capID)
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		output.Details(trimmed)
	}
	if err != nil {
		return out, err
	}

	log.Info("UpgradeCap transferred", "object", capID)
	return out, nil
}
