// Package billparser reads carrier phone-bill CSV exports and aggregates the
// call minutes and SMS counts of every phone number found in them.
//
// A bill is a heterogeneous CSV file. Two-field header rows open the section
// of a phone number, 13-field rows are calls, 12-field rows are messages and
// single-field rows carry plan labels. Rows are told apart by their field
// count and a few marker values.
package billparser

import (
	"strconv"
	"strings"

	"fjacquet/phonebill/internal/parsererror"
	"fjacquet/phonebill/internal/textutils"
)

// Marker values and column positions of the bill layout.
const (
	CallDetailMarker = "CALL DETAIL"
	DataDetailMarker = "DATADETAIL"
	SMSMarker        = "SMS"

	callFieldCount = 13
	smsFieldCount  = 12

	colDate       = 2
	colNumber     = 4
	colMinutes    = 6
	colCallMarker = 7
	colSMSMarker  = 9
)

// callMarkers are the usage codes that identify a call row.
var callMarkers = map[string]struct{}{
	"SDDV": {},
	"WIFI": {},
	"NBSY": {},
}

// Kind is the classification of a single row.
type Kind int

const (
	KindNoMatch Kind = iota
	KindEmpty
	KindConstant
	KindCallHeader
	KindDataHeader
	KindCall
	KindSMS
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindConstant:
		return "constant"
	case KindCallHeader:
		return "call-header"
	case KindDataHeader:
		return "data-header"
	case KindCall:
		return "call"
	case KindSMS:
		return "sms"
	default:
		return "no-match"
	}
}

// Record is a classified row. Only the fields relevant to Kind are set.
type Record struct {
	Kind    Kind
	Phone   string // header rows
	Number  string // call and SMS rows
	Date    string // call rows
	Minutes int    // call rows
	Token   string // constant rows
}

// Classify determines what a row is from its field count and markers.
// The only error is a *parsererror.ParseError for a call row whose minutes
// column is not an integer.
func Classify(row []string) (Record, error) {
	switch len(row) {
	case 0:
		return Record{Kind: KindEmpty}, nil

	case 1:
		return Record{Kind: KindConstant, Token: textutils.CleanField(row[0])}, nil

	case 2:
		if row[0] == CallDetailMarker {
			return Record{Kind: KindCallHeader, Phone: textutils.CleanField(row[1])}, nil
		}
		if textutils.CleanField(row[0]) == DataDetailMarker {
			return Record{Kind: KindDataHeader, Phone: textutils.CleanField(row[1])}, nil
		}

	case callFieldCount:
		if _, ok := callMarkers[textutils.CleanField(row[colCallMarker])]; ok {
			raw := row[colMinutes]
			minutes, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return Record{}, &parsererror.ParseError{
					Parser: "bill",
					Field:  "minutes",
					Value:  raw,
					Err:    err,
				}
			}
			return Record{
				Kind:    KindCall,
				Number:  textutils.CleanField(row[colNumber]),
				Date:    row[colDate],
				Minutes: minutes,
			}, nil
		}

	case smsFieldCount:
		if textutils.CleanField(row[colSMSMarker]) == SMSMarker {
			return Record{Kind: KindSMS, Number: textutils.CleanField(row[colNumber])}, nil
		}
	}

	return Record{Kind: KindNoMatch}, nil
}
