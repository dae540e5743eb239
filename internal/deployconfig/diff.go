package deployconfig

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// Changes lists key-level differences between two configs.
type Changes struct {
	Added   []string
	Removed []string
	Changed []output.ChangedEntry
}

// IsEmpty reports whether the configs are identical.
func (c Changes) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Compare returns the keys added, removed and changed going from prev to next.
func Compare(prev, next DeploymentConfig) Changes {
	var ch Changes
	for _, k := range next.SortedKeys() {
		old, ok := prev[k]
		switch {
		case !ok:
			ch.Added = append(ch.Added, k)
		case old != next[k]:
			ch.Changed = append(ch.Changed, output.ChangedEntry{Key: k, From: old, To: next[k]})
		}
	}
	for _, k := range prev.SortedKeys() {
		if _, ok := next[k]; !ok {
			ch.Removed = append(ch.Removed, k)
		}
	}
	return ch
}

// DiffStyle selects how the document diff is rendered.
type DiffStyle int

const (
	// DiffHuman renders a dyff report, suited to terminals.
	DiffHuman DiffStyle = iota
	// DiffUnified renders a plain unified diff, suited to logs and pipes.
	DiffUnified
)

// Diff renders the change from prev to next for the file of network.
func Diff(network string, prev, next DeploymentConfig, style DiffStyle) (string, error) {
	ch := Compare(prev, next)
	if ch.IsEmpty() {
		return output.RenderKeyDiff(nil, nil, nil, ""), nil
	}

	prevData, err := prev.Encode()
	if err != nil {
		return "", err
	}
	nextData, err := next.Encode()
	if err != nil {
		return "", err
	}

	var detail string
	switch style {
	case DiffUnified:
		name := network + ".json"
		detail = udiff.Unified("a/"+name, "b/"+name, string(prevData), string(nextData))
	default:
		detail, err = humanDiff(prevData, nextData, !output.IsNoColor())
		if err != nil {
			return "", err
		}
	}

	return output.RenderKeyDiff(ch.Added, ch.Removed, ch.Changed, detail), nil
}

// humanDiff compares two JSON documents with dyff.
func humanDiff(prev, next []byte, useColor bool) (string, error) {
	prevInput, err := loadInput("previous", prev)
	if err != nil {
		return "", fmt.Errorf("parsing previous config: %w", err)
	}
	nextInput, err := loadInput("new", next)
	if err != nil {
		return "", fmt.Errorf("parsing new config: %w", err)
	}

	report, err := dyff.CompareInputFiles(prevInput, nextInput)
	if err != nil {
		return "", fmt.Errorf("comparing configs: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	w := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := w.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// loadInput parses JSON, which is also YAML, into a dyff input file.
func loadInput(name string, data []byte) (ytbx.InputFile, error) {
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
