package deployconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		config  DeploymentConfig
		wantErr bool
	}{
		{"empty", DeploymentConfig{}, false},
		{"typical", DeploymentConfig{
			"PackageId":    "0xa1",
			"UpgradeCap":   "0xB3",
			"NftPublisher": "0x43888ff633a296d4d87026ee10a4d9f3ca649ea3403190a45ddd9712948d73cb",
		}, false},
		{"no prefix", DeploymentConfig{"PackageId": "a1"}, true},
		{"not hex", DeploymentConfig{"WidgetDisplay": "0xZZ"}, true},
		{"empty value", DeploymentConfig{"TreasuryCap": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
