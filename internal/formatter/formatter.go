// Package formatter renders Arma values as literal text for output.
package formatter

import (
	"strings"

	"github.com/mcncl/armago/internal/value"
)

// DefaultIndent is used by Pretty when no indent is configured.
const DefaultIndent = "    "

// Formatter renders Value trees. The zero Formatter produces compact
// output; set Indent to control Pretty rendering.
type Formatter struct {
	Indent string
}

// NewFormatter creates a Formatter with the default indent
func NewFormatter() *Formatter {
	return &Formatter{Indent: DefaultIndent}
}

// Format renders v in the compact wire form, byte-for-byte identical to
// value.Value.String. This is what gets handed to the runtime.
func (f *Formatter) Format(v value.Value) string {
	return v.String()
}

// Pretty renders v with each array element on its own line, indented by
// nesting depth. Scalars render exactly as in the compact form, so
// stripping the added whitespace yields the wire form again. Intended
// for humans inspecting output, not for the runtime.
func (f *Formatter) Pretty(v value.Value) string {
	indent := f.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	var sb strings.Builder
	f.pretty(&sb, v, indent, 0)
	return sb.String()
}

func (f *Formatter) pretty(sb *strings.Builder, v value.Value, indent string, depth int) {
	elements, ok := v.AsSlice()
	if !ok {
		sb.WriteString(v.String())
		return
	}
	if len(elements) == 0 {
		sb.WriteString("[]")
		return
	}

	sb.WriteString("[\n")
	for i, el := range elements {
		for d := 0; d <= depth; d++ {
			sb.WriteString(indent)
		}
		f.pretty(sb, el, indent, depth+1)
		if i < len(elements)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	for d := 0; d < depth; d++ {
		sb.WriteString(indent)
	}
	sb.WriteByte(']')
}
