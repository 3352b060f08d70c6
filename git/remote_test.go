package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushWasRejected_RejectedRef(t *testing.T) {
	porcelain := "To git@example.com:me/notes.git\n" +
		"!\trefs/heads/main:refs/heads/main\t[rejected] (fetch first)\n" +
		"Done\n"

	assert.True(t, pushWasRejected(porcelain))
}

func TestPushWasRejected_CleanPush(t *testing.T) {
	porcelain := "To git@example.com:me/notes.git\n" +
		"*\trefs/heads/main:refs/heads/main\t[new branch]\n" +
		"Done\n"

	assert.False(t, pushWasRejected(porcelain))
}

func TestPushWasRejected_EmptyOutput(t *testing.T) {
	assert.False(t, pushWasRejected(""))
}
