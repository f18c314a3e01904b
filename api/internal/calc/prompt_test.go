package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeInstructionsDeterministic(t *testing.T) {
	a := VariableMap{"x": 4, "y": "five", "z": 1.5}
	b := VariableMap{"z": 1.5, "y": "five", "x": 4}

	assert.Equal(t, ComposeInstructions(a), ComposeInstructions(b))
}

func TestComposeInstructionsEmbedsVariables(t *testing.T) {
	got := ComposeInstructions(VariableMap{"x": 4})
	assert.Contains(t, got, `"x":4`)
	assert.Contains(t, got, "substitute the variable")
}

func TestComposeInstructionsNilMap(t *testing.T) {
	got := ComposeInstructions(nil)
	assert.Contains(t, got, "{}")
}

func TestComposeInstructionsTaskRules(t *testing.T) {
	got := ComposeInstructions(VariableMap{})
	assert.Contains(t, got, "PEMDAS")
	assert.True(t, strings.Contains(got, "FIVE TYPES"))
	assert.Contains(t, got, `"assign"`)
	assert.Contains(t, got, "no markdown or code fences")
}
