package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"expr": "1"}]`, StripCodeFences("```json\n[{\"expr\": \"1\"}]\n```"))
	assert.Equal(t, `[{'expr': '1'}]`, StripCodeFences("```python\n[{'expr': '1'}]\n```"))
	assert.Equal(t, "plain", StripCodeFences("  plain  "))
	assert.Equal(t, "x", StripCodeFences("```\nx\n```"))
}
