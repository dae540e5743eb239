package deployconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

func TestCompare(t *testing.T) {
	prev := DeploymentConfig{"PackageId": "0x1", "UpgradeCap": "0x2", "Gone": "0x3"}
	next := DeploymentConfig{"PackageId": "0x9", "UpgradeCap": "0x2", "NftPublisher": "0x4"}

	ch := Compare(prev, next)

	assert.Equal(t, []string{"NftPublisher"}, ch.Added)
	assert.Equal(t, []string{"Gone"}, ch.Removed)
	assert.Equal(t, []output.ChangedEntry{{Key: "PackageId", From: "0x1", To: "0x9"}}, ch.Changed)
	assert.False(t, ch.IsEmpty())
	assert.True(t, Compare(next, next).IsEmpty())
}

func TestDiff_Unified(t *testing.T) {
	prev := DeploymentConfig{"PackageId": "0x1"}
	next := DeploymentConfig{"PackageId": "0x2"}

	out, err := Diff("localnet", prev, next, DiffUnified)

	require.NoError(t, err)
	assert.Contains(t, out, "a/localnet.json")
	assert.Contains(t, out, `-    "PackageId": "0x1"`)
	assert.Contains(t, out, `+    "PackageId": "0x2"`)
	assert.Contains(t, out, "Summary: 1 changed")
}

func TestDiff_Human(t *testing.T) {
	prev := DeploymentConfig{"PackageId": "0x1"}
	next := DeploymentConfig{"PackageId": "0x2", "UpgradeCap": "0x3"}

	out, err := Diff("localnet", prev, next, DiffHuman)

	require.NoError(t, err)
	assert.Contains(t, out, "PackageId")
	assert.Contains(t, out, "UpgradeCap")
	assert.Contains(t, out, "Summary: 1 added, 1 changed")
}

func TestDiff_NoChanges(t *testing.T) {
	c := DeploymentConfig{"PackageId": "0x1"}

	out, err := Diff("localnet", c, c, DiffHuman)

	require.NoError(t, err)
	assert.Equal(t, "No changes from previous deployment config.", out)
}

func TestDiff_FromNothing(t *testing.T) {
	out, err := Diff("mainnet", nil, DeploymentConfig{"PackageId": "0x1"}, DiffUnified)

	require.NoError(t, err)
	assert.Contains(t, out, "Summary: 1 added")
}
