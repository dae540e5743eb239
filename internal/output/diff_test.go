package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderKeyDiff(t *testing.T) {
	t.Run("renders no changes message", func(t *testing.T) {
		assert.Equal(t, "No changes from previous deployment config.", RenderKeyDiff(nil, nil, nil, ""))
	})

	t.Run("renders added, removed and changed keys", func(t *testing.T) {
		result := RenderKeyDiff(
			[]string{"NftPublisher"},
			[]string{"OldThing"},
			[]ChangedEntry{{Key: "PackageId", From: "0x1", To: "0x2"}},
			"",
		)

		assert.Contains(t, result, "Added:")
		assert.Contains(t, result, "NftPublisher")
		assert.Contains(t, result, "Removed:")
		assert.Contains(t, result, "OldThing")
		assert.Contains(t, result, "Changed:")
		assert.Contains(t, result, "PackageId")
		assert.Contains(t, result, "-> 0x2")
		assert.Contains(t, result, "Summary: 1 added, 1 removed, 1 changed")
	})

	t.Run("appends indented detail", func(t *testing.T) {
		result := RenderKeyDiff([]string{"A"}, nil, nil, "line one\n\nline two")
		assert.Contains(t, result, "  line one\n  line two\n")
	})
}

func TestIndentDiff(t *testing.T) {
	assert.Equal(t, "", IndentDiff("", "  "))
	assert.Equal(t, "> a\n> b\n", IndentDiff("a\n\nb\n", "> "))
}
