package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		kind      Kind
		condition string
		wholeLine bool
		prefix    string
	}{
		{"content", "plain text", KindNone, "", false, ""},
		{"empty", "", KindNone, "", false, ""},
		{"block if", "#if foo", KindIf, "foo", true, ""},
		{"indented block if", "  #if bar", KindIf, "bar", true, ""},
		{"block if with trailing space", "#if foo   ", KindIf, "foo", true, ""},
		{"block and", "#if (and a b)", KindIf, "(and a b)", true, ""},
		{"block or with tab", "#if\t(or a b)", KindIf, "(or a b)", true, ""},
		{"inline if", "include this #if foo", KindIf, "foo", false, "include this"},
		{"inline if keeps leading space", "  key = 1   #if foo", KindIf, "foo", false, "  key = 1"},
		{"crlf block if", "#if foo\r", KindIf, "foo", true, ""},
		{"endif", "#endif", KindEndif, "", true, ""},
		{"indented endif", "  #endif", KindEndif, "", true, ""},
		{"endif with trailing space", "#endif  \t", KindEndif, "", true, ""},
		{"endif with trailing text", "#endif foo", KindNone, "", false, ""},
		{"ifdef is not a directive", "#ifdef FOO", KindNone, "", false, ""},
		{"if without condition", "#if", KindNone, "", false, ""},
		{"if with only whitespace", "#if    ", KindIf, "", true, ""},
		{"inline if with only whitespace", "x = 1 #if \t", KindIf, "", false, "x = 1"},
		{"ifdef then inline if", "#ifdef X #if y", KindIf, "y", false, "#ifdef X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Scan(tt.line)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.condition, m.Condition)
			assert.Equal(t, tt.wholeLine, m.WholeLine())
			assert.Equal(t, tt.prefix, m.Prefix())
		})
	}
}

func TestScan_Span(t *testing.T) {
	line := "value #if flag  "
	m := Scan(line)

	assert.Equal(t, 6, m.Start)
	assert.Equal(t, len(line), m.End)
	assert.Equal(t, "#if flag  ", line[m.Start:m.End])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "if", KindIf.String())
	assert.Equal(t, "endif", KindEndif.String())
	assert.Equal(t, "none", KindNone.String())
}
