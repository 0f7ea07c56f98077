package prompt

import (
	"math"
	"strconv"
	"strings"
)

// ScanPixAI parses PixAI/Stable-Diffusion-style prompt text into segments.
// Emphasis comes from nested `()` / `[]` brackets (1.1 / 0.9 per level) or
// from an explicit `(tag:weight)` token whose weight is taken literally,
// ignoring surrounding depth. A backslash escapes the next character, which
// is how literal parentheses survive inside tag text.
//
// Unlike the NovelAI scanner, closing brackets never drive a depth counter
// below zero. The scan never fails.
func ScanPixAI(text string) []Segment {
	var (
		segs        []Segment
		buf         strings.Builder
		parenDepth  int
		squareDepth int
	)

	flush := func() {
		tag := strings.TrimSpace(unescape(buf.String()))
		buf.Reset()
		if tag == "" {
			return
		}
		w := math.Pow(1.1, float64(parenDepth)) * math.Pow(0.9, float64(squareDepth))
		segs = append(segs, newSegment(tag, roundWeight(w)))
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		// Escapes win over everything else at this position.
		if runes[i] == '\\' && i+1 < len(runes) {
			buf.WriteRune(runes[i])
			buf.WriteRune(runes[i+1])
			i++
			continue
		}

		if runes[i] == '(' {
			if n, tag, w, ok := matchOverride(runes[i:]); ok {
				flush()
				if tag != "" {
					segs = append(segs, newSegment(tag, w))
				}
				i += n - 1
				continue
			}
		}

		switch runes[i] {
		case '(':
			flush()
			parenDepth++
		case ')':
			flush()
			if parenDepth > 0 {
				parenDepth--
			}
		case '[':
			flush()
			squareDepth++
		case ']':
			flush()
			if squareDepth > 0 {
				squareDepth--
			}
		case ',':
			flush()
		default:
			buf.WriteRune(runes[i])
		}
	}
	flush()

	return segs
}

// matchOverride tries to read an atomic `(tag:weight)` token at the start of
// rs. The tag is one or more characters that are neither `:` nor an
// unescaped paren; the weight must parse as a finite number or the whole
// token is rejected and the caller falls back to treating `(` as an
// emphasis bracket. Returns the token length in runes and the un-escaped,
// trimmed tag.
func matchOverride(rs []rune) (n int, tag string, weight float64, ok bool) {
	i := 1
	start := i
	for i < len(rs) {
		if rs[i] == '\\' && i+1 < len(rs) {
			i += 2
			continue
		}
		if rs[i] == ':' || rs[i] == '(' || rs[i] == ')' {
			break
		}
		i++
	}
	if i == start || i >= len(rs) || rs[i] != ':' {
		return 0, "", 0, false
	}
	content := string(rs[start:i])
	i++

	numStart := i
	for i < len(rs) && isNumberRune(rs[i]) {
		i++
	}
	if i >= len(rs) || rs[i] != ')' {
		return 0, "", 0, false
	}
	w, err := strconv.ParseFloat(string(rs[numStart:i]), 64)
	if err != nil || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, "", 0, false
	}

	return i + 1, strings.TrimSpace(unescape(content)), w, true
}

// unescape collapses stored `\x` pairs to their literal character. A lone
// trailing backslash is kept as-is.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '\\' && i+1 < len(rs) {
			i++
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

func escapeParens(s string) string {
	s = strings.ReplaceAll(s, `(`, `\(`)
	return strings.ReplaceAll(s, `)`, `\)`)
}

// SerializePixAI renders segments back to PixAI syntax, joined with ", ".
// Literal parens in tag text are backslash-escaped; weighted segments
// become `(text:weight)` so the weight survives a rescan exactly.
func SerializePixAI(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		esc := escapeParens(text)
		if s.Kind == KindPlain || s.Weight == 1.0 {
			parts = append(parts, esc)
		} else {
			parts = append(parts, "("+esc+":"+formatWeight(s.Weight)+")")
		}
	}
	return strings.Join(parts, ", ")
}
