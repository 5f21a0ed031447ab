package textutils

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string, delimiter rune) ([][]string, []int) {
	t.Helper()
	rr := NewRowReader(strings.NewReader(input), delimiter, SpaceQuote)
	var (
		rows  [][]string
		lines []int
	)
	for {
		row, err := rr.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
		lines = append(lines, rr.Line())
	}
	return rows, lines
}

func TestRowReader_Read(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:     "plain rows",
			input:    "a,b,c\nd,e\n",
			expected: [][]string{{"a", "b", "c"}, {"d", "e"}},
		},
		{
			name:     "double quote is an ordinary character",
			input:    "1,\"Mom's cell,x\n2,y\"\n",
			expected: [][]string{{"1", "\"Mom's cell", "x"}, {"2", "y\""}},
		},
		{
			name:     "leading space quotes up to the next space",
			input:    "a, b,c d ,e\n",
			expected: [][]string{{"a", "b,cd ", "e"}},
		},
		{
			name:     "doubled quote inside a quoted field",
			input:    "a, x  y ,b\n",
			expected: [][]string{{"a", "x y", "b"}},
		},
		{
			name:     "inner and trailing spaces are kept",
			input:    "CALL DETAIL,555-1000 \n",
			expected: [][]string{{"CALL DETAIL", "555-1000 "}},
		},
		{
			name:     "empty fields and trailing delimiter",
			input:    ",a,,\n",
			expected: [][]string{{"", "a", "", ""}},
		},
		{
			name:     "blank line and missing final newline",
			input:    "a\n\nb",
			expected: [][]string{{"a"}, {}, {"b"}},
		},
		{
			name:     "crlf line endings",
			input:    "a,b\r\nc\r\n",
			expected: [][]string{{"a", "b"}, {"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, _ := readAll(t, tt.input, ',')
			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestRowReader_QuotedFieldSpansLines(t *testing.T) {
	rows, lines := readAll(t, "a, b\nc ,d\ne,f\n", ',')

	assert.Equal(t, [][]string{{"a", "b\nc", "d"}, {"e", "f"}}, rows)
	assert.Equal(t, []int{1, 3}, lines)
}

func TestRowReader_UnterminatedQuoteAtEOF(t *testing.T) {
	rows, _ := readAll(t, "a, b\nc\n", ',')
	assert.Equal(t, [][]string{{"a", "b\nc"}}, rows)
}

func TestRowReader_PipeDelimiter(t *testing.T) {
	rows, lines := readAll(t, "1|2|\"Mom|111.222.3333\n", '|')

	assert.Equal(t, [][]string{{"1", "2", "\"Mom", "111.222.3333"}}, rows)
	assert.Equal(t, []int{1}, lines)
}
