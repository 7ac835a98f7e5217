package protocol

import (
	"fmt"
	"strings"
)

// Range selects a span of queue positions. Start is inclusive. End is
// inclusive unless ExcludeEnd is set; an End of OpenEnd leaves the range
// open-ended. The wire form is always half-open ("start:end").
type Range struct {
	Start      int
	End        int
	ExcludeEnd bool
}

// OpenEnd marks a Range with no upper bound.
const OpenEnd = -1

// Term is one clause of a search query.
type Term struct {
	Tag   string
	Value string
}

// Query is an ordered list of search clauses, encoded in order as
// `tag "value"` pairs.
type Query []Term

// Command encodes a command name and its arguments into one wire line.
// Nil arguments are skipped; the caller must not pass nil where the
// protocol requires a field.
func Command(name string, args ...any) string {
	var b strings.Builder
	b.WriteString(name)
	for _, arg := range args {
		enc := encodeArg(arg)
		if enc == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(enc)
	}
	return strings.TrimSpace(b.String())
}

func encodeArg(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "1"
		}
		return "0"
	case Range:
		return encodeRange(v)
	case *Track:
		return quote(v.File)
	case Query:
		return encodeQuery(v)
	case string:
		return quote(v)
	default:
		return quote(fmt.Sprint(v))
	}
}

// encodeRange emits the half-open wire form. Closed source ranges add one
// to the end; ranges already excluding their end do not.
func encodeRange(r Range) string {
	if r.End == OpenEnd {
		return fmt.Sprintf("%d:", r.Start)
	}
	end := r.End
	if !r.ExcludeEnd {
		end++
	}
	return fmt.Sprintf("%d:%d", r.Start, end)
}

func encodeQuery(q Query) string {
	parts := make([]string, 0, len(q))
	for _, term := range q {
		parts = append(parts, term.Tag+" "+forceQuote(term.Value))
	}
	return strings.Join(parts, " ")
}

// quote wraps a value in double quotes when the bare form would be
// ambiguous on the wire: empty values and values containing whitespace,
// quotes, or backslashes.
func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"\\") {
		return s
	}
	return forceQuote(s)
}

func forceQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
