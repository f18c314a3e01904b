package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralListJSON(t *testing.T) {
	recs, err := parseLiteralList(`[{"expr": "2 + 3 * 4", "result": "14"}]`)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2 + 3 * 4", recs[0]["expr"])
	assert.Equal(t, "14", recs[0]["result"])
}

func TestParseLiteralListPythonDialect(t *testing.T) {
	recs, err := parseLiteralList(`[{'expr': 'x', 'result': 2, 'assign': True}, {'expr': 'y', 'result': None}]`)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "x", recs[0]["expr"])
	assert.Equal(t, float64(2), recs[0]["result"])
	assert.Equal(t, true, recs[0]["assign"])
	assert.Nil(t, recs[1]["result"])
}

func TestParseLiteralListNumbers(t *testing.T) {
	recs, err := parseLiteralList(`[{'a': -1.5}, {'b': 2e3}, {'c': 42}]`)
	require.NoError(t, err)
	assert.Equal(t, -1.5, recs[0]["a"])
	assert.Equal(t, 2000.0, recs[1]["b"])
	assert.Equal(t, 42.0, recs[2]["c"])
}

func TestParseLiteralListEscapes(t *testing.T) {
	recs, err := parseLiteralList(`[{'expr': 'it\'s a 45° angle\nreally'}]`)
	require.NoError(t, err)
	assert.Equal(t, "it's a 45° angle\nreally", recs[0]["expr"])
}

func TestParseLiteralListNested(t *testing.T) {
	recs, err := parseLiteralList(`[{'expr': 'roots', 'result': [1, -1], 'meta': {'kind': 'equation'}}]`)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, -1.0}, recs[0]["result"])
	assert.Equal(t, map[string]any{"kind": "equation"}, recs[0]["meta"])
}

func TestParseLiteralListRejects(t *testing.T) {
	cases := map[string]string{
		"prose":           `not a valid literal`,
		"top-level map":   `{"expr": "x"}`,
		"top-level num":   `42`,
		"non-map element": `["just a string"]`,
		"trailing data":   `[] and then some`,
		"unterminated":    `[{'expr': 'x'`,
		"call expr":       `[{'expr': __import__('os')}]`,
		"bare word":       `[{'expr': exec}]`,
	}
	for name, raw := range cases {
		_, err := parseLiteralList(raw)
		assert.Error(t, err, name)
	}
}

func TestParseLiteralListEmpty(t *testing.T) {
	recs, err := parseLiteralList(`[]`)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
