// Package deployconfig persists the key to object id map produced by a
// deployment.
package deployconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// Well-known keys.
const (
	KeyPackageID  = "PackageId"
	KeyUpgradeCap = "UpgradeCap"
)

// DeploymentConfig maps a configuration key to an on-chain object id.
type DeploymentConfig map[string]string

// SortedKeys returns the keys in ascending lexicographic order.
func (c DeploymentConfig) SortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy.
func (c DeploymentConfig) Clone() DeploymentConfig {
	out := make(DeploymentConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Encode renders c as JSON with keys sorted, four-space indentation and a
// trailing newline. HTML characters are not escaped.
func (c DeploymentConfig) Encode() ([]byte, error) {
	if c == nil {
		c = DeploymentConfig{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	// encoding/json writes map keys in sorted order.
	if err := enc.Encode(map[string]string(c)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a persisted deployment config.
func Decode(data []byte) (DeploymentConfig, error) {
	var c DeploymentConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrValidation, err, "decoding deployment config")
	}
	if c == nil {
		c = DeploymentConfig{}
	}
	return c, nil
}

// Path returns the file a network's config is persisted to.
func Path(dir, network string) string {
	return filepath.Join(dir, network+".json")
}

// Read loads the persisted config of network from dir.
// A missing file is reported as ErrNotFound.
func Read(dir, network string) (DeploymentConfig, error) {
	path := Path(dir, network)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				"no deployment config for network "+network,
				path,
				"run 'pmc deploy' for this network first",
			)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
