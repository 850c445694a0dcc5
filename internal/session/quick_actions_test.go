package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickActions(t *testing.T) {
	actions := QuickActions()

	texts := make([]string, 0, len(actions))
	for _, a := range actions {
		assert.NotEmpty(t, a.Label)
		texts = append(texts, a.Text)
	}
	assert.Equal(t, []string{"analyze readme", "status", "help"}, texts)
}

func TestQuickActions_ReturnsCopy(t *testing.T) {
	actions := QuickActions()
	actions[0].Text = "changed"

	text, ok := QuickActionText(0)
	assert.True(t, ok)
	assert.Equal(t, "analyze readme", text)
}

func TestQuickActionText_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 3, 100} {
		text, ok := QuickActionText(i)
		assert.False(t, ok)
		assert.Empty(t, text)
	}
}
