package billparser

import (
	"strings"
)

// callRow builds a 13-field call detail row.
func callRow(date, number, minutes, marker string) string {
	fields := make([]string, callFieldCount)
	fields[0] = "1"
	fields[colDate] = date
	fields[3] = "10:00AM"
	fields[colNumber] = number
	fields[5] = "DALLAS TX"
	fields[colMinutes] = minutes
	fields[colCallMarker] = marker
	return strings.Join(fields, ",")
}

// smsRow builds a 12-field SMS detail row.
func smsRow(number string) string {
	fields := make([]string, smsFieldCount)
	fields[0] = "1"
	fields[2] = "01/02/2023"
	fields[colNumber] = number
	fields[colSMSMarker] = SMSMarker
	return strings.Join(fields, ",")
}

func bill(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
