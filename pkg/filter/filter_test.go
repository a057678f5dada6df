package filter

import (
	"strings"
	"testing"

	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, active ...string) ([]string, types.FlagSet, error) {
	t.Helper()
	used := NewUsedFlags()
	out, err := ProcessReader(strings.NewReader(input), types.NewFlagSet(active...), WithTracker(used), WithPath("test.txt"))
	return out, used.Set(), err
}

func joined(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		active []string
		want   []string
		used   []string
	}{
		{
			name:   "no directives",
			input:  "line 1\nline 2",
			active: []string{"any"},
			want:   []string{"line 1", "line 2"},
			used:   []string{},
		},
		{
			name:   "block if true",
			input:  "#if foo\ncontent\n#endif",
			active: []string{"foo"},
			want:   []string{"content"},
			used:   []string{"foo"},
		},
		{
			name:   "block if false",
			input:  "#if foo\ncontent\n#endif",
			active: []string{"bar"},
			want:   []string{},
			used:   []string{"foo"},
		},
		{
			name:   "content before and after",
			input:  "before\n#if foo\ncontent\n#endif\nafter",
			active: []string{"bar"},
			want:   []string{"before", "after"},
			used:   []string{"foo"},
		},
		{
			name:   "inline if true",
			input:  "include this #if foo",
			active: []string{"foo"},
			want:   []string{"include this"},
			used:   []string{"foo"},
		},
		{
			name:   "inline if false",
			input:  "include this #if foo",
			active: []string{"bar"},
			want:   []string{},
			used:   []string{"foo"},
		},
		{
			name:   "inline false inside true block",
			input:  "#if A\nline1\ncontent #if B\nline3\n#endif",
			active: []string{"A"},
			want:   []string{"line1", "line3"},
			used:   []string{"A", "B"},
		},
		{
			name:   "inline true inside true block",
			input:  "#if A\nline1\ncontent #if B\nline3\n#endif",
			active: []string{"A", "B"},
			want:   []string{"line1", "content", "line3"},
			used:   []string{"A", "B"},
		},
		{
			name:   "inline true inside false block",
			input:  "#if A\nline1\ncontent #if B\nline3\n#endif",
			active: []string{"B"},
			want:   []string{},
			used:   []string{"A", "B"},
		},
		{
			name:   "mixed block and inline",
			input:  "Always #if X\n#if A\nBlock A content\nInline #if B\nMore A\n#endif\nFinal",
			active: []string{"X", "A"},
			want:   []string{"Always", "Block A content", "More A", "Final"},
			used:   []string{"A", "B", "X"},
		},
		{
			name:   "nested true true",
			input:  "#if A\nouter\n#if B\ninner\n#endif\nouter_end\n#endif",
			active: []string{"A", "B"},
			want:   []string{"outer", "inner", "outer_end"},
			used:   []string{"A", "B"},
		},
		{
			name:   "nested true false",
			input:  "#if A\nouter\n#if B\ninner\n#endif\nouter_end\n#endif",
			active: []string{"A", "C"},
			want:   []string{"outer", "outer_end"},
			used:   []string{"A", "B"},
		},
		{
			name:   "flags under a false ancestor are still used",
			input:  "#if A\nouter\n#if B\ninner\n#endif\nouter_end\n#endif",
			active: []string{"C", "B"},
			want:   []string{},
			used:   []string{"A", "B"},
		},
		{
			name:   "and true",
			input:  "#if (and foo bar)\ncontent\n#endif",
			active: []string{"foo", "bar", "baz"},
			want:   []string{"content"},
			used:   []string{"bar", "foo"},
		},
		{
			name:   "or false",
			input:  "#if (or foo bar)\ncontent\n#endif",
			active: []string{"baz", "qux"},
			want:   []string{},
			used:   []string{"bar", "foo"},
		},
		{
			name:   "empty input",
			input:  "",
			active: []string{"A"},
			want:   []string{},
			used:   []string{},
		},
		{
			name:   "only directives",
			input:  "#if A\n#if B\n#endif\n#endif",
			active: []string{"A", "B"},
			want:   []string{},
			used:   []string{"A", "B"},
		},
		{
			name:   "indented directives and trailing whitespace",
			input:  "#if foo  \nfoo\n  #if bar\nfoobar\n  #endif  \n#endif\n",
			active: []string{"foo"},
			want:   []string{"foo"},
			used:   []string{"bar", "foo"},
		},
		{
			name:   "content whitespace is kept",
			input:  "  indented  \n\n\ttabbed",
			active: nil,
			want:   []string{"  indented  ", "", "\ttabbed"},
			used:   []string{},
		},
		{
			name:   "carriage returns are kept",
			input:  "a\r\n#if x\r\nb\r\n#endif\r\n",
			active: []string{"x"},
			want:   []string{"a\r", "b\r"},
			used:   []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, used, err := run(t, tt.input, tt.active...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.used, used.Sorted())
		})
	}
}

func TestProcess_ComplexNesting(t *testing.T) {
	input := `Always here
#if A
A block
#if (and B C)
  B and C block
#endif
#if (or D E)
  D or E block
  #if F
    F block (inside D or E)
  #endif
#endif
Still A block
#endif
Always here too`

	out, used, err := run(t, input, "A", "B", "D", "F")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Always here",
		"A block",
		"  D or E block",
		"    F block (inside D or E)",
		"Still A block",
		"Always here too",
	}, out)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, used.Sorted())
}

func TestProcess_DocumentedExamples(t *testing.T) {
	input := "foo\n#if bar\nbar\n#endif\nbaz\n"

	out, _, err := run(t, input, "bar")
	require.NoError(t, err)
	assert.Equal(t, "foo\nbar\nbaz\n", joined(out))

	out, _, err = run(t, input)
	require.NoError(t, err)
	assert.Equal(t, "foo\nbaz\n", joined(out))

	nested := "#if foo\nfoo\n  #if bar\nfoobar\n  #endif\n#endif\n"

	out, _, err = run(t, nested, "foo", "bar")
	require.NoError(t, err)
	assert.Contains(t, joined(out), "foobar")

	out, _, err = run(t, nested, "foo")
	require.NoError(t, err)
	assert.NotContains(t, joined(out), "foobar")
	assert.Contains(t, joined(out), "foo")
}

func TestProcess_StructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     errors.ErrorCode
		line     int
		contains string
	}{
		{"unclosed if", "#if a\n", errors.ErrMismatchedIf, 1, "mismatched #if/#endif"},
		{"unclosed inner if", "#if a\n#if b\nx\n#endif\n#if c\n", errors.ErrMismatchedIf, 5, "test.txt:5"},
		{"endif without if", "#endif\n", errors.ErrMismatchedEndif, 1, "mismatched #endif"},
		{"endif after content", "content\n#endif", errors.ErrMismatchedEndif, 2, "test.txt:2"},
		{"extra endif", "#if a\n#endif\n#endif\n", errors.ErrMismatchedEndif, 3, "mismatched #endif"},
		{"malformed and", "line1\n#if (and foo\nline2\n#endif", errors.ErrConditionParse, 2, "(and foo"},
		{"if with blank condition", "x\n#if   \ny\n#endif\n", errors.ErrConditionParse, 2, "empty condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.input, "a")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.line, errors.GetErrorDetails(err)["line"])
			assert.Equal(t, "test.txt", errors.GetErrorDetails(err)["path"])
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestProcess_ProseMentioningIf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"inline prose", "echo use #if foo to gate lines\nkept\n", "kept\n"},
		{"inline trailing comment", "key = 1 #if foo # trailing comment\nkept\n", "kept\n"},
		{"bare and block", "#if (and)\nx\n#endif\nkept\n", "kept\n"},
		{"bare or block", "#if (or)\nx\n#endif\nkept\n", "kept\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.input, "foo", "and", "or")
			require.NoError(t, err)
			assert.Equal(t, tt.want, joined(out))
		})
	}
}

func TestProcess_NoTracker(t *testing.T) {
	out, err := Process([]string{"#if a", "x", "#endif"}, types.NewFlagSet("a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out)
}

func TestProcess_ErrorWithoutPath(t *testing.T) {
	_, err := Process([]string{"#endif"}, types.NewFlagSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestProcess_OutputIsSubsetOfInput(t *testing.T) {
	input := "a #if x\n#if y\n  b  \nc #if z\n#endif\nd\n"
	for _, active := range [][]string{nil, {"x"}, {"y"}, {"x", "y", "z"}} {
		out, _, err := run(t, input, active...)
		require.NoError(t, err)
		inputLines := SplitLines(input)
		assert.LessOrEqual(t, len(out), len(inputLines))
		for _, line := range out {
			found := false
			for _, in := range inputLines {
				if strings.Contains(in, line) {
					found = true
					break
				}
			}
			assert.True(t, found, "%q is not part of any input line", line)
		}
	}
}

func TestProcess_Idempotent(t *testing.T) {
	input := "keep\n#if a\nA\n#endif\nprefix #if a\n#if b\nB\n#endif\n"
	active := []string{"a"}

	first, _, err := run(t, input, active...)
	require.NoError(t, err)
	second, _, err := run(t, joined(first), active...)
	require.NoError(t, err)
	assert.Equal(t, joined(first), joined(second))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{""}, SplitLines("\n"))
	assert.Equal(t, []string{"a"}, SplitLines("a"))
	assert.Equal(t, []string{"a"}, SplitLines("a\n"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))
}
