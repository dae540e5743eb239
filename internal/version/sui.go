package version

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// suiVersionRegex matches sui version output like "sui 1.38.1-abc123def".
var suiVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// DetectSuiBinary finds the sui binary and asks it for its version.
func DetectSuiBinary(ctx context.Context, binary string) SuiBinaryInfo {
	path, err := exec.LookPath(binary)
	if err != nil {
		return SuiBinaryInfo{
			Found:   false,
			Message: binary + " not found in PATH",
		}
	}

	version, err := getSuiVersion(ctx, path)
	if err != nil {
		return SuiBinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get sui version: " + err.Error(),
		}
	}

	return SuiBinaryInfo{
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// getSuiVersion executes 'sui --version' and extracts the version string.
func getSuiVersion(ctx context.Context, suiPath string) (string, error) {
	cmd := exec.CommandContext(ctx, suiPath, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the version number from sui version output.
func extractVersion(output string) (string, error) {
	match := suiVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}

	return match, nil
}

// versionParseError indicates failure to parse sui version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse sui version from output: " + strings.TrimSpace(e.output)
}
