package util

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// ErrBadPayload reports an image payload that cannot be decoded: no
// metadata separator, or the encoded segment is not valid base64.
var ErrBadPayload = errors.New("bad image payload")

// DecodeImagePayload decodes a data-URL style payload of the form
// "<metadata>,<base64>". Everything before the first comma is treated as
// opaque metadata; if it looks like a data:URI the MIME type is extracted
// as a hint. The payload must contain the separator.
func DecodeImagePayload(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return nil, "", ErrBadPayload
	}
	hintMIME := mimeFromDataURLMeta(s[:idx])
	enc := s[idx+1:]

	// Standard base64 first, then URL-safe for frontend variations.
	if b, err := base64.StdEncoding.DecodeString(enc); err == nil {
		return b, hintMIME, nil
	}
	if b, err := base64.URLEncoding.DecodeString(enc); err == nil {
		return b, hintMIME, nil
	}
	return nil, "", ErrBadPayload
}

// mimeFromDataURLMeta pulls "<mime>" out of "data:<mime>;base64".
func mimeFromDataURLMeta(meta string) string {
	if !strings.HasPrefix(meta, "data:") {
		return ""
	}
	meta = meta[len("data:"):]
	if semi := strings.IndexByte(meta, ';'); semi >= 0 {
		return meta[:semi]
	}
	return meta
}

func SniffMimeHTTP(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	return "application/octet-stream"
}

// PickMIME prefers the data:URI hint, then detects from the bytes.
func PickMIME(hint string, data []byte) string {
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "image/png"
}
