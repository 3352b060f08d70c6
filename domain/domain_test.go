package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeSet_Total(t *testing.T) {
	cs := ChangeSet{
		Staged:    []string{"a.md"},
		Unstaged:  []string{"b.md", "c.md"},
		Untracked: []string{"d.md"},
	}

	assert.Equal(t, 4, cs.Total())
	assert.True(t, cs.HasChanges())
}

func TestChangeSet_Empty(t *testing.T) {
	var cs ChangeSet

	assert.Equal(t, 0, cs.Total())
	assert.False(t, cs.HasChanges())
}

func TestShortHashOf(t *testing.T) {
	assert.Equal(t, "a1b2c3d", ShortHashOf("a1b2c3d4e5f6a7b8"))
	assert.Equal(t, "abc", ShortHashOf("abc"))
	assert.Equal(t, "", ShortHashOf(""))
}

func TestResultConstructors(t *testing.T) {
	ok := OK("done")
	assert.True(t, ok.Ok)
	assert.Equal(t, "done", ok.Message)
	assert.Empty(t, ok.Kind)

	fail := Fail(KindNothingToCapture, "nothing")
	assert.False(t, fail.Ok)
	assert.Equal(t, KindNothingToCapture, fail.Kind)
	assert.Equal(t, "nothing", fail.Message)
}
