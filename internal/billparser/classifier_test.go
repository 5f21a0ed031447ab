package billparser

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/phonebill/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(row string) []string {
	return strings.Split(row, ",")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		expected Record
	}{
		{
			name:     "empty row",
			row:      []string{},
			expected: Record{Kind: KindEmpty},
		},
		{
			name:     "constant row is trimmed",
			row:      []string{"  AT&T "},
			expected: Record{Kind: KindConstant, Token: "AT&T"},
		},
		{
			name:     "call detail header",
			row:      []string{"CALL DETAIL", " 555-1000"},
			expected: Record{Kind: KindCallHeader, Phone: "555-1000"},
		},
		{
			name:     "call detail marker must match exactly",
			row:      []string{" CALL DETAIL", "555-1000"},
			expected: Record{Kind: KindNoMatch},
		},
		{
			name:     "data detail header is trimmed",
			row:      []string{" DATADETAIL ", "555-1000"},
			expected: Record{Kind: KindDataHeader, Phone: "555-1000"},
		},
		{
			name:     "other two-field row",
			row:      []string{"Total", "42"},
			expected: Record{Kind: KindNoMatch},
		},
		{
			name:     "call row",
			row:      split(callRow("2023-01-01", " 555-2000 ", " 5", " SDDV ")),
			expected: Record{Kind: KindCall, Number: "555-2000", Date: "2023-01-01", Minutes: 5},
		},
		{
			name:     "call date is kept verbatim",
			row:      split(callRow("2023-01-01 ", "555-2000", "5", "SDDV")),
			expected: Record{Kind: KindCall, Number: "555-2000", Date: "2023-01-01 ", Minutes: 5},
		},
		{
			name:     "wifi call row",
			row:      split(callRow("2023-01-01", "555-2000", "7", "WIFI")),
			expected: Record{Kind: KindCall, Number: "555-2000", Date: "2023-01-01", Minutes: 7},
		},
		{
			name:     "numbersync call row",
			row:      split(callRow("2023-01-01", "555-2000", "0", "NBSY")),
			expected: Record{Kind: KindCall, Number: "555-2000", Date: "2023-01-01", Minutes: 0},
		},
		{
			name:     "13 fields with another usage code",
			row:      split(callRow("2023-01-01", "555-2000", "oops", "DATA")),
			expected: Record{Kind: KindNoMatch},
		},
		{
			name:     "sms row",
			row:      split(smsRow(" 555-444-1234 ")),
			expected: Record{Kind: KindSMS, Number: "555-444-1234"},
		},
		{
			name:     "12 fields without sms marker",
			row:      make([]string, smsFieldCount),
			expected: Record{Kind: KindNoMatch},
		},
		{
			name:     "sms marker on a 13-field row",
			row:      append(split(smsRow("555-444-1234")), ""),
			expected: Record{Kind: KindNoMatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Classify(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record)
		})
	}
}

func TestClassify_MalformedMinutes(t *testing.T) {
	_, err := Classify(split(callRow("2023-01-01", "555-2000", "5m", "SDDV")))
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "minutes", parseErr.Field)
	assert.Equal(t, "5m", parseErr.Value)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "call-header", KindCallHeader.String())
	assert.Equal(t, "sms", KindSMS.String())
	assert.Equal(t, "no-match", KindNoMatch.String())
}
