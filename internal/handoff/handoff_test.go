package handoff

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

type transfer struct{ to, objectID string }

type fakeTransferrer struct {
	calls []transfer
	err   error
}

func (f *fakeTransferrer) Transfer(_ context.Context, to, objectID string) (string, error) {
	f.calls = append(f.calls, transfer{to, objectID})
	if f.err != nil {
		return "", f.err
	}
	return "Transaction Digest: abc\n", nil
}

const treasury = "0xde0053243f3226649701a7fe2c3988be11941bf3ff3535f3c8c5bf32fc600220"

func TestTransferUpgradeCap(t *testing.T) {
	tr := &fakeTransferrer{}
	h := &Handoff{Transferrer: tr, Treasury: treasury}

	out, err := h.TransferUpgradeCap(context.Background(), deployconfig.DeploymentConfig{
		"PackageId":  "0xA1",
		"UpgradeCap": "0xB3",
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Transaction Digest")
	assert.Equal(t, []transfer{{treasury, "0xB3"}}, tr.calls)
}

func TestTransferUpgradeCap_Missing(t *testing.T) {
	tr := &fakeTransferrer{}
	h := &Handoff{Transferrer: tr, Treasury: treasury}

	_, err := h.TransferUpgradeCap(context.Background(), deployconfig.DeploymentConfig{"PackageId": "0xA1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrMissingUpgradeCap)
	assert.Empty(t, tr.calls, "no command may run without an UpgradeCap")
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

func TestTransferUpgradeCap_CommandFails(t *testing.T) {
	tr := &fakeTransferrer{err: fmt.Errorf("transfer: %w", oerrors.ErrTransferCommand)}
	h := &Handoff{Transferrer: tr, Treasury: treasury}

	_, err := h.TransferUpgradeCap(context.Background(), deployconfig.DeploymentConfig{"UpgradeCap": "0xB3"})

	assert.ErrorIs(t, err, oerrors.ErrTransferCommand)
	assert.Len(t, tr.calls, 1)
}
