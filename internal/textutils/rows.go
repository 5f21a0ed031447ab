package textutils

import (
	"bufio"
	"io"
	"strings"
)

// SpaceQuote is the quote character of carrier exports. A field that starts
// with a space is quoted up to the next space, and '"' is an ordinary
// character.
const SpaceQuote = ' '

type rowState int

const (
	startField rowState = iota
	inField
	inQuoted
	quoteInQuoted
)

// RowReader splits delimited text into rows. Unlike encoding/csv the quote
// character is configurable. A quoted field may run over several lines; two
// quote characters in a row inside it stand for one.
type RowReader struct {
	r         *bufio.Reader
	delimiter rune
	quote     rune
	line      int
	start     int
}

// NewRowReader creates a RowReader over r.
func NewRowReader(r io.Reader, delimiter, quote rune) *RowReader {
	return &RowReader{r: bufio.NewReader(r), delimiter: delimiter, quote: quote}
}

// Line returns the 1-based line on which the last row read started.
func (rr *RowReader) Line() int {
	return rr.start
}

func (rr *RowReader) readLine() (string, error) {
	text, err := rr.r.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	rr.line++
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// Read returns the next row, or io.EOF when the input is exhausted. A blank
// line is returned as an empty row.
func (rr *RowReader) Read() ([]string, error) {
	text, err := rr.readLine()
	if err != nil {
		return nil, err
	}
	rr.start = rr.line
	if text == "" {
		return []string{}, nil
	}

	var (
		row   []string
		field strings.Builder
		state = startField
	)
	emit := func() {
		row = append(row, field.String())
		field.Reset()
		state = startField
	}

	for {
		for _, c := range text {
			switch state {
			case startField:
				switch c {
				case rr.quote:
					state = inQuoted
				case rr.delimiter:
					emit()
				default:
					field.WriteRune(c)
					state = inField
				}
			case inField:
				if c == rr.delimiter {
					emit()
				} else {
					field.WriteRune(c)
				}
			case inQuoted:
				if c == rr.quote {
					state = quoteInQuoted
				} else {
					field.WriteRune(c)
				}
			case quoteInQuoted:
				switch c {
				case rr.quote:
					field.WriteRune(c)
					state = inQuoted
				case rr.delimiter:
					emit()
				default:
					field.WriteRune(c)
					state = inField
				}
			}
		}
		if state != inQuoted {
			break
		}

		// unterminated quote: the field continues on the next line
		next, err := rr.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		field.WriteByte('\n')
		text = next
	}

	row = append(row, field.String())
	return row, nil
}
