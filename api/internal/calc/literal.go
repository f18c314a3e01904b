package calc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseLiteralList parses the model reply as a literal list of mappings.
// JSON is the fast path since that is what the prompt demands; the fallback
// reader accepts the Python literal dialect the model occasionally slips
// into (single-quoted strings, True/False/None). Both are data-only
// grammars: lists, mappings, strings, numbers, booleans, null. Nothing is
// ever evaluated.
func parseLiteralList(raw string) ([]Record, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		p := &literalReader{s: raw}
		lv, lerr := p.read()
		if lerr != nil {
			return nil, lerr
		}
		v = lv
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is not a list")
	}
	out := make([]Record, 0, len(list))
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not a mapping", i)
		}
		out = append(out, Record(m))
	}
	return out, nil
}

type literalReader struct {
	s string
	i int
}

func (p *literalReader) read() (any, error) {
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.i != len(p.s) {
		return nil, p.errf("trailing data")
	}
	return v, nil
}

func (p *literalReader) errf(format string, args ...any) error {
	return fmt.Errorf("literal: %s at offset %d", fmt.Sprintf(format, args...), p.i)
}

func (p *literalReader) ws() {
	for p.i < len(p.s) {
		r, size := utf8.DecodeRuneInString(p.s[p.i:])
		if !unicode.IsSpace(r) {
			return
		}
		p.i += size
	}
}

func (p *literalReader) value() (any, error) {
	p.ws()
	if p.i >= len(p.s) {
		return nil, p.errf("unexpected end of input")
	}
	switch c := p.s[p.i]; {
	case c == '[':
		return p.list()
	case c == '{':
		return p.mapping()
	case c == '\'' || c == '"':
		return p.str(c)
	case c == '-' || c == '+' || (c >= '0' && c <= '9') || c == '.':
		return p.number()
	default:
		return p.bareword()
	}
}

func (p *literalReader) list() (any, error) {
	p.i++ // '['
	out := []any{}
	for {
		p.ws()
		if p.i >= len(p.s) {
			return nil, p.errf("unterminated list")
		}
		if p.s[p.i] == ']' {
			p.i++
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.ws()
		if p.i < len(p.s) && p.s[p.i] == ',' {
			p.i++
			continue
		}
		if p.i < len(p.s) && p.s[p.i] == ']' {
			p.i++
			return out, nil
		}
		return nil, p.errf("expected ',' or ']'")
	}
}

func (p *literalReader) mapping() (any, error) {
	p.i++ // '{'
	out := map[string]any{}
	for {
		p.ws()
		if p.i >= len(p.s) {
			return nil, p.errf("unterminated mapping")
		}
		if p.s[p.i] == '}' {
			p.i++
			return out, nil
		}
		if p.s[p.i] != '\'' && p.s[p.i] != '"' {
			return nil, p.errf("mapping key must be a quoted string")
		}
		key, err := p.str(p.s[p.i])
		if err != nil {
			return nil, err
		}
		p.ws()
		if p.i >= len(p.s) || p.s[p.i] != ':' {
			return nil, p.errf("expected ':'")
		}
		p.i++
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out[key] = v
		p.ws()
		if p.i < len(p.s) && p.s[p.i] == ',' {
			p.i++
			continue
		}
		if p.i < len(p.s) && p.s[p.i] == '}' {
			p.i++
			return out, nil
		}
		return nil, p.errf("expected ',' or '}'")
	}
}

func (p *literalReader) str(quote byte) (string, error) {
	p.i++ // opening quote
	var b strings.Builder
	for p.i < len(p.s) {
		c := p.s[p.i]
		switch c {
		case quote:
			p.i++
			return b.String(), nil
		case '\\':
			p.i++
			if p.i >= len(p.s) {
				return "", p.errf("unterminated escape")
			}
			switch e := p.s[p.i]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"', '/':
				b.WriteByte(e)
			case 'u':
				if p.i+4 >= len(p.s) {
					return "", p.errf("bad unicode escape")
				}
				n, err := strconv.ParseUint(p.s[p.i+1:p.i+5], 16, 32)
				if err != nil {
					return "", p.errf("bad unicode escape")
				}
				b.WriteRune(rune(n))
				p.i += 4
			default:
				return "", p.errf("unsupported escape %q", e)
			}
			p.i++
		default:
			b.WriteByte(c)
			p.i++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *literalReader) number() (any, error) {
	start := p.i
	if p.s[p.i] == '-' || p.s[p.i] == '+' {
		p.i++
	}
	seenDot, seenExp := false, false
	for p.i < len(p.s) {
		c := p.s[p.i]
		if c >= '0' && c <= '9' {
			p.i++
			continue
		}
		if c == '.' && !seenDot && !seenExp {
			seenDot = true
			p.i++
			continue
		}
		if (c == 'e' || c == 'E') && !seenExp {
			seenExp = true
			p.i++
			if p.i < len(p.s) && (p.s[p.i] == '-' || p.s[p.i] == '+') {
				p.i++
			}
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(p.s[start:p.i], 64)
	if err != nil {
		return nil, p.errf("bad number %q", p.s[start:p.i])
	}
	return f, nil
}

func (p *literalReader) bareword() (any, error) {
	start := p.i
	for p.i < len(p.s) {
		c := p.s[p.i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			p.i++
			continue
		}
		break
	}
	switch p.s[start:p.i] {
	case "true", "True":
		return true, nil
	case "false", "False":
		return false, nil
	case "null", "None":
		return nil, nil
	}
	p.i = start
	return nil, p.errf("unexpected token")
}
