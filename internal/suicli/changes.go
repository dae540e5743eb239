package suicli

import (
	"bytes"
	"encoding/json"
	"fmt"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// ChangeKind is the kind of an object change.
type ChangeKind string

// Object change kinds. Kinds the classifier does not act on are
// normalised to ChangeOther.
const (
	ChangePublished ChangeKind = "published"
	ChangeCreated   ChangeKind = "created"
	ChangeMutated   ChangeKind = "mutated"
	ChangeOther     ChangeKind = "other"
)

// ObjectChange is one entry of a transaction's objectChanges list.
type ObjectChange struct {
	Type       ChangeKind  `json:"type"`
	ObjectType string      `json:"objectType,omitempty"`
	ObjectID   string      `json:"objectId,omitempty"`
	PackageID  string      `json:"packageId,omitempty"`
	Sender     string      `json:"sender,omitempty"`
	Digest     string      `json:"digest,omitempty"`
	Version    json.Number `json:"version,omitempty"`

	// RawType keeps the kind as reported when Type is ChangeOther.
	RawType string `json:"-"`
}

// UnmarshalJSON decodes an object change and normalises its kind.
func (c *ObjectChange) UnmarshalJSON(data []byte) error {
	type plain ObjectChange
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ObjectChange(p)
	c.RawType = string(p.Type)
	switch p.Type {
	case ChangePublished, ChangeCreated, ChangeMutated:
	default:
		c.Type = ChangeOther
	}
	return nil
}

// PublishResult is the subset of the publish transaction response pmc uses.
type PublishResult struct {
	Digest        string         `json:"digest"`
	ObjectChanges []ObjectChange `json:"objectChanges"`
}

// publishEnvelope is the top level of the publish JSON document.
type publishEnvelope struct {
	Digest        string          `json:"digest"`
	ObjectChanges json.RawMessage `json:"objectChanges"`
}

func (e publishEnvelope) hasChanges() bool {
	return len(e.ObjectChanges) > 0 && string(e.ObjectChanges) != "null"
}

// findEnvelope locates the publish document in output that may carry
// warnings ahead of it. Decoding is tried at every '{' until one yields a
// document with objectChanges, so braces inside warning lines are skipped.
func findEnvelope(data []byte) (publishEnvelope, error) {
	var (
		firstErr   error
		decodedAny bool
	)
	for off := 0; off < len(data); {
		i := bytes.IndexByte(data[off:], '{')
		if i < 0 {
			break
		}
		start := off + i
		off = start + 1

		var env publishEnvelope
		if err := json.NewDecoder(bytes.NewReader(data[start:])).Decode(&env); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if env.hasChanges() {
			return env, nil
		}
		decodedAny = true
	}

	switch {
	case decodedAny:
		return publishEnvelope{}, fmt.Errorf("%w: output has no objectChanges", oerrors.ErrPublishCommand)
	case firstErr != nil:
		return publishEnvelope{}, oerrors.WrapCause(oerrors.ErrPublishCommand, firstErr, "decoding publish output")
	default:
		return publishEnvelope{}, fmt.Errorf("%w: output contains no JSON document", oerrors.ErrPublishCommand)
	}
}

// ParsePublishResult decodes publish output. Text ahead of the JSON
// document is skipped; the CLI may print warnings before it.
func ParsePublishResult(data []byte) (*PublishResult, error) {
	raw, err := findEnvelope(data)
	if err != nil {
		return nil, err
	}

	result := &PublishResult{Digest: raw.Digest}
	if err := json.Unmarshal(raw.ObjectChanges, &result.ObjectChanges); err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrPublishCommand, err, "decoding objectChanges")
	}

	for i, c := range result.ObjectChanges {
		switch {
		case c.Type == ChangePublished && c.PackageID == "":
			return nil, fmt.Errorf("%w: objectChanges[%d]: published change without packageId", oerrors.ErrPublishCommand, i)
		case c.Type == ChangeCreated && (c.ObjectType == "" || c.ObjectID == ""):
			return nil, fmt.Errorf("%w: objectChanges[%d]: created change without objectType or objectId", oerrors.ErrPublishCommand, i)
		}
	}

	return result, nil
}
