// Package classify turns the object changes of a publish transaction into
// a deployment config.
package classify

import (
	"context"
	"strings"

	"github.com/studio-mirai/prime-machin-contracts/internal/output"
	"github.com/studio-mirai/prime-machin-contracts/internal/suicli"
)

// ModuleNameFetcher resolves the module name recorded in a Publisher object.
type ModuleNameFetcher interface {
	FetchModuleName(ctx context.Context, objectID string) (string, error)
}

// Matcher is one classification rule for created objects.
type Matcher interface {
	// Name identifies the rule in logs and results.
	Name() string
	// Match reports whether the rule applies to objectType.
	Match(objectType string) bool
	// Key derives the configuration key of a matched change.
	Key(ctx context.Context, change suicli.ObjectChange) (string, error)
}

// Project names the project's native coin.
type Project struct {
	Name       string
	CoinModule string
	CoinSymbol string
}

// DefaultProject is the Koto coin.
func DefaultProject() Project {
	return Project{Name: "Koto", CoinModule: "koto", CoinSymbol: "KOTO"}
}

// DefaultRules returns the rule set in evaluation order. The last rule
// matches every type. fetcher may be nil, in which case Publisher objects
// are keyed without a module name.
func DefaultRules(p Project, fetcher ModuleNameFetcher) []Matcher {
	return []Matcher{
		displayRule{},
		containsRule{name: "transfer-policy-cap", substr: "TransferPolicyCap", key: "TransferPolicyCap"},
		containsRule{name: "transfer-policy", substr: "TransferPolicy", key: "TransferPolicy"},
		coinRule{project: p},
		containsRule{name: "coin-metadata", substr: "CoinMetadata", key: p.Name + "CoinMetadata"},
		containsRule{name: "treasury-cap", substr: "TreasuryCap", key: "TreasuryCap"},
		publisherRule{fetcher: fetcher},
		fallbackRule{},
	}
}

// lastSegment returns the text after the last "::", or "" if there is none.
func lastSegment(objectType string) (string, bool) {
	i := strings.LastIndex(objectType, "::")
	if i < 0 {
		return "", false
	}
	return objectType[i+2:], true
}

// displayParam extracts the innermost type name of a generic Display type:
// 0x2::display::Display<0xA1::widget::Widget> yields Widget.
func displayParam(objectType string) string {
	if !strings.Contains(objectType, "<") {
		return ""
	}
	seg, ok := lastSegment(objectType)
	if !ok {
		return ""
	}
	end := strings.LastIndex(seg, ">")
	if end < 0 {
		return ""
	}
	return strings.TrimRight(seg[:end], ">")
}

type displayRule struct{}

func (displayRule) Name() string { return "display" }

func (displayRule) Match(objectType string) bool {
	return strings.Contains(objectType, "Display") && displayParam(objectType) != ""
}

func (displayRule) Key(_ context.Context, c suicli.ObjectChange) (string, error) {
	return displayParam(c.ObjectType) + "Display", nil
}

type containsRule struct {
	name   string
	substr string
	key    string
}

func (r containsRule) Name() string { return r.name }

func (r containsRule) Match(objectType string) bool {
	return strings.Contains(objectType, r.substr)
}

func (r containsRule) Key(context.Context, suicli.ObjectChange) (string, error) {
	return r.key, nil
}

// coinPrefixes are the spellings of the framework coin type.
var coinPrefixes = []string{
	"0x2::coin::Coin<",
	"0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<",
}

type coinRule struct {
	project Project
}

func (coinRule) Name() string { return "project-coin" }

func (r coinRule) Match(objectType string) bool {
	suffix := r.project.CoinModule + "::" + r.project.CoinSymbol + ">"
	if !strings.HasSuffix(objectType, suffix) {
		return false
	}
	for _, p := range coinPrefixes {
		if strings.HasPrefix(objectType, p) {
			return true
		}
	}
	return false
}

func (r coinRule) Key(context.Context, suicli.ObjectChange) (string, error) {
	return r.project.Name + "Coin", nil
}

type publisherRule struct {
	fetcher ModuleNameFetcher
}

func (publisherRule) Name() string { return "publisher" }

func (publisherRule) Match(objectType string) bool {
	return strings.Contains(objectType, "Publisher")
}

func (r publisherRule) Key(ctx context.Context, c suicli.ObjectChange) (string, error) {
	if r.fetcher == nil {
		output.Warn("no rpc endpoint, keying publisher without module name", "object", c.ObjectID)
		return "Publisher", nil
	}
	module, err := r.fetcher.FetchModuleName(ctx, c.ObjectID)
	if err != nil {
		return "", err
	}
	return module + "Publisher", nil
}

type fallbackRule struct{}

func (fallbackRule) Name() string { return "fallback" }

func (fallbackRule) Match(string) bool { return true }

func (fallbackRule) Key(_ context.Context, c suicli.ObjectChange) (string, error) {
	if seg, ok := lastSegment(c.ObjectType); ok && seg != "" {
		return seg, nil
	}
	return c.ObjectType, nil
}
