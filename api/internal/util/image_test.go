package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImagePayload(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x01, 0x02}
	enc := base64.StdEncoding.EncodeToString(raw)

	data, mime, err := DecodeImagePayload("data:image/png;base64," + enc)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/png", mime)
}

func TestDecodeImagePayloadOpaquePrefix(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString([]byte("hello"))

	// the metadata segment is discarded, not validated
	data, mime, err := DecodeImagePayload("whatever," + enc)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Empty(t, mime)
}

func TestDecodeImagePayloadLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 100} {
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = byte(i)
		}
		enc := base64.StdEncoding.EncodeToString(raw)
		data, _, err := DecodeImagePayload("data:image/png;base64," + enc)
		require.NoError(t, err)
		assert.Len(t, data, n)
	}
}

func TestDecodeImagePayloadURLSafe(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 0xFD, 0xFC}
	enc := base64.URLEncoding.EncodeToString(raw)
	data, _, err := DecodeImagePayload("data:image/png;base64," + enc)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeImagePayloadNoSeparator(t *testing.T) {
	_, _, err := DecodeImagePayload("onlynoseparator")
	assert.ErrorIs(t, err, ErrBadPayload)
}

func TestDecodeImagePayloadBadBase64(t *testing.T) {
	_, _, err := DecodeImagePayload("data:image/png;base64,@@@not-base64@@@")
	assert.ErrorIs(t, err, ErrBadPayload)
}

func TestPickMIME(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	assert.Equal(t, "image/jpeg", PickMIME("image/jpeg", png))
	assert.Equal(t, "image/png", PickMIME("", png))
	assert.Equal(t, "image/png", PickMIME("", nil))
}

func TestSniffMimeHTTP(t *testing.T) {
	assert.Equal(t, "image/jpeg", SniffMimeHTTP([]byte{0xFF, 0xD8, 0x00}))
	assert.Equal(t, "image/png", SniffMimeHTTP([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}))
	assert.Equal(t, "application/octet-stream", SniffMimeHTTP([]byte("plain")))
}
