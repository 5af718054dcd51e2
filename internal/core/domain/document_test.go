package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_HasTag(t *testing.T) {
	doc := Document{Tags: []string{"git", "shell"}}

	assert.True(t, doc.HasTag("git"))
	assert.True(t, doc.HasTag("shell"))
	assert.False(t, doc.HasTag("Git"))
	assert.False(t, doc.HasTag(""))
}

func TestDocument_InFolder(t *testing.T) {
	doc := Document{Folder: "tools/git"}

	assert.True(t, doc.InFolder("tools/git"))
	assert.False(t, doc.InFolder("tools"))
	assert.False(t, (&Document{Folder: RootFolder}).InFolder("tools"))
}

func TestSpan(t *testing.T) {
	body := "# A\ntext\n## B\n"

	t.Run("slices the covered bytes", func(t *testing.T) {
		assert.Equal(t, "text\n", Span{Start: 4, End: 9}.Slice(body))
		assert.Equal(t, 5, Span{Start: 4, End: 9}.Len())
	})

	t.Run("clamps out of range spans", func(t *testing.T) {
		assert.Equal(t, "## B\n", Span{Start: 9, End: 100}.Slice(body))
		assert.Equal(t, "", Span{Start: 20, End: 30}.Slice(body))
		assert.Equal(t, "", Span{Start: 5, End: 2}.Slice(body))
	})
}

func TestHeadingID(t *testing.T) {
	assert.Equal(t, "heading-1-0", HeadingID(1, 0))
	assert.Equal(t, "heading-3-12", HeadingID(3, 12))
}
