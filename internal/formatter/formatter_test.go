package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/armago/internal/value"
)

func TestFormat_MatchesWireForm(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name  string
		value value.Value
	}{
		{name: "nil", value: value.Nil()},
		{name: "number", value: value.Number(54)},
		{name: "string", value: value.Str(`say "hi"`)},
		{name: "array", value: value.Array(value.Boolean(false), value.Number(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value.String(), f.Format(tt.value))
		})
	}
}

func TestPretty_Scalars(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "null", f.Pretty(value.Nil()))
	assert.Equal(t, "42", f.Pretty(value.Number(42)))
	assert.Equal(t, `"a"`, f.Pretty(value.Str("a")))
	assert.Equal(t, "[]", f.Pretty(value.Array()))
}

func TestPretty_Array(t *testing.T) {
	f := &Formatter{Indent: "  "}
	v := value.Array(
		value.Str("a"),
		value.Array(value.Number(1), value.Number(2)),
		value.Nil(),
	)

	expected := `[
  "a",
  [
    1,
    2
  ],
  null
]`
	assert.Equal(t, expected, f.Pretty(v))
}

func TestPretty_StripsBackToCompact(t *testing.T) {
	f := NewFormatter()
	v := value.Array(
		value.Array(value.Str("x"), value.Number(0.5)),
		value.Boolean(true),
		value.Array(),
	)

	stripped := strings.NewReplacer("\n", "", " ", "").Replace(f.Pretty(v))
	assert.Equal(t, f.Format(v), stripped)
}
