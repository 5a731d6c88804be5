package diag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-gateway/internal/api"
)

func TestComposeWithoutDiagnostics(t *testing.T) {
	scope := NewScope(nil)

	resp := Compose("primary text", scope)

	require.Len(t, resp.Content, 1)
	assert.Equal(t, api.ContentBlockTypeText, resp.Content[0].Type)
	assert.Equal(t, "primary text", resp.Content[0].Text)
}

func TestComposeWithDiagnostics(t *testing.T) {
	scope := NewScope(nil)
	for i := 0; i < 3; i++ {
		scope.Append(fmt.Sprintf("step-%d", i))
	}

	resp := Compose("primary text", scope)

	require.Len(t, resp.Content, 2)
	assert.Equal(t, "primary text", resp.Content[0].Text)

	block := resp.Content[1]
	assert.Equal(t, api.ContentBlockTypeText, block.Type)
	assert.True(t, strings.HasPrefix(block.Text, DebugLogsHeader))

	// Draining is exhaustive and order-preserving.
	i0 := strings.Index(block.Text, "step-0")
	i1 := strings.Index(block.Text, "step-1")
	i2 := strings.Index(block.Text, "step-2")
	assert.True(t, i0 >= 0 && i0 < i1 && i1 < i2)
	assert.Zero(t, scope.Len())
}

func TestComposeDrainsExactlyOnce(t *testing.T) {
	scope := NewScope(nil)
	scope.Append("only once")

	first := Compose("a", scope)
	second := Compose("b", scope)

	assert.Len(t, first.Content, 2)
	assert.Len(t, second.Content, 1)
}

func TestComposeNilScope(t *testing.T) {
	resp := Compose("primary", nil)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "primary", resp.Content[0].Text)
}
