package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaultsAssignFalse(t *testing.T) {
	got := Normalize(`[{"expr": "2 + 3 * 4", "result": "14"}]`)
	require.Len(t, got, 1)
	assert.Equal(t, false, got[0]["assign"])
	assert.Equal(t, "2 + 3 * 4", got[0]["expr"])
	assert.Equal(t, "14", got[0]["result"])
}

func TestNormalizeAssignPresenceWins(t *testing.T) {
	// any literal value for "assign" signals intent, including falsy ones
	for _, raw := range []string{
		`[{"expr": "x", "result": "-1", "assign": true}]`,
		`[{"expr": "x", "result": "-1", "assign": false}]`,
		`[{"expr": "x", "result": "-1", "assign": "yes"}]`,
		`[{'expr': 'x', 'result': '-1', 'assign': True}]`,
	} {
		got := Normalize(raw)
		require.Len(t, got, 1, raw)
		assert.Equal(t, true, got[0]["assign"], raw)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	got := Normalize(`[{"expr": "a", "result": 1}, {"expr": "b", "result": 2}, {"expr": "c", "result": 3}]`)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0]["expr"])
	assert.Equal(t, "b", got[1]["expr"])
	assert.Equal(t, "c", got[2]["expr"])
}

func TestNormalizeDegradesToEmpty(t *testing.T) {
	for _, raw := range []string{
		`not a valid literal`,
		`{"expr": "x"}`,
		`"a string"`,
		``,
		`[1, 2, 3]`,
	} {
		got := Normalize(raw)
		assert.NotNil(t, got, raw)
		assert.Empty(t, got, raw)
	}
}

func TestNormalizeStripsCodeFences(t *testing.T) {
	got := Normalize("```json\n[{\"expr\": \"1 + 1\", \"result\": 2}]\n```")
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0]["result"])
}

func TestNormalizePassesMalformedRecordsThrough(t *testing.T) {
	// records missing expr/result are not validated at this layer
	got := Normalize(`[{"note": "incomplete"}]`)
	require.Len(t, got, 1)
	assert.Equal(t, "incomplete", got[0]["note"])
	assert.Equal(t, false, got[0]["assign"])
	_, hasExpr := got[0]["expr"]
	assert.False(t, hasExpr)
}
