package classify

import (
	"context"
	"fmt"

	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
	"github.com/studio-mirai/prime-machin-contracts/internal/suicli"
)

// RulePublished names the entry produced by the published change.
const RulePublished = "published"

// Match records which rule produced a key.
type Match struct {
	Rule       string
	Key        string
	ObjectID   string
	ObjectType string
}

// Collision records a key assigned more than once. The later object wins.
type Collision struct {
	Key      string
	Previous string
	Current  string
}

// Result is the outcome of classifying one transaction.
type Result struct {
	Config     deployconfig.DeploymentConfig
	Matches    []Match
	Collisions []Collision
	// Ignored counts mutated and other changes.
	Ignored int
}

// Accumulator builds a Result one entry at a time.
type Accumulator struct {
	strict bool
	result Result
}

// NewAccumulator returns an empty Accumulator. With strict set, a second
// assignment to a key is an error instead of an overwrite.
func NewAccumulator(strict bool) *Accumulator {
	return &Accumulator{
		strict: strict,
		result: Result{Config: deployconfig.DeploymentConfig{}},
	}
}

// Set assigns m.Key to m.ObjectID.
func (a *Accumulator) Set(m Match) error {
	if prev, ok := a.result.Config[m.Key]; ok {
		if a.strict {
			return fmt.Errorf("%w: %q already holds %s, cannot assign %s (rule %s)",
				oerrors.ErrKeyCollision, m.Key, prev, m.ObjectID, m.Rule)
		}
		a.result.Collisions = append(a.result.Collisions, Collision{Key: m.Key, Previous: prev, Current: m.ObjectID})
		output.Warn("configuration key assigned twice, keeping the later object",
			"key", m.Key, "previous", prev, "current", m.ObjectID)
	}
	a.result.Config[m.Key] = m.ObjectID
	a.result.Matches = append(a.result.Matches, m)
	return nil
}

// Ignore counts a change that produces no entry.
func (a *Accumulator) Ignore() {
	a.result.Ignored++
}

// Result returns the accumulated result.
func (a *Accumulator) Result() *Result {
	return &a.result
}

// Classifier applies an ordered rule list to object changes.
type Classifier struct {
	rules      []Matcher
	strictKeys bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithStrictKeys rejects key collisions.
func WithStrictKeys(strict bool) Option {
	return func(c *Classifier) { c.strictKeys = strict }
}

// New returns a Classifier using rules in order. The first matching rule
// wins, so the list should end with a rule that matches everything.
func New(rules []Matcher, opts ...Option) *Classifier {
	c := &Classifier{rules: rules}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify processes changes in order. A rule error, such as a failed
// publisher lookup, aborts classification.
func (c *Classifier) Classify(ctx context.Context, changes []suicli.ObjectChange) (*Result, error) {
	acc := NewAccumulator(c.strictKeys)

	for i, change := range changes {
		switch change.Type {
		case suicli.ChangePublished:
			if err := acc.Set(Match{Rule: RulePublished, Key: deployconfig.KeyPackageID, ObjectID: change.PackageID}); err != nil {
				return nil, err
			}

		case suicli.ChangeCreated:
			m, err := c.classifyCreated(ctx, change)
			if err != nil {
				return nil, fmt.Errorf("classifying change %d (%s): %w", i, change.ObjectType, err)
			}
			output.Debug("classified", "rule", m.Rule, "key", m.Key, "object", m.ObjectID)
			if err := acc.Set(m); err != nil {
				return nil, err
			}

		default:
			acc.Ignore()
		}
	}

	return acc.Result(), nil
}

func (c *Classifier) classifyCreated(ctx context.Context, change suicli.ObjectChange) (Match, error) {
	for _, rule := range c.rules {
		if !rule.Match(change.ObjectType) {
			continue
		}
		key, err := rule.Key(ctx, change)
		if err != nil {
			return Match{}, err
		}
		return Match{Rule: rule.Name(), Key: key, ObjectID: change.ObjectID, ObjectType: change.ObjectType}, nil
	}
	// Only reachable with a rule list lacking a catch-all.
	var fb fallbackRule
	key, _ := fb.Key(ctx, change)
	return Match{Rule: fb.Name(), Key: key, ObjectID: change.ObjectID, ObjectType: change.ObjectType}, nil
}
