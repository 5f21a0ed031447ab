package models

import (
	"sort"

	"fjacquet/phonebill/internal/textutils"
)

// UnknownDate is reported for the call period when no call was recorded.
const UnknownDate = "Unknown"

// Result aggregates the usage of one phone number. It is owned by a single
// phone number for its whole life and must not be mutated once flushed.
type Result struct {
	Phone     string
	SMS       map[string]int
	Minutes   map[string]int
	CallDates []string
}

// Tally is one line of a report section.
type Tally struct {
	Number string
	Value  int
}

// NewResult creates an empty Result for phone.
func NewResult(phone string) *Result {
	return &Result{
		Phone:   phone,
		SMS:     make(map[string]int),
		Minutes: make(map[string]int),
	}
}

// AddSMS counts one message to number. Numbers that do not look like a phone
// number are ignored and false is returned.
func (r *Result) AddSMS(number string) bool {
	if !textutils.MatchesLoosePhone(number) {
		return false
	}
	r.SMS[number]++
	return true
}

// AddMinutes adds minutes to number and records the call date.
func (r *Result) AddMinutes(number, date string, minutes int) {
	r.Minutes[number] += minutes
	r.CallDates = append(r.CallDates, date)
}

// FirstCallDate returns the date of the first recorded call.
func (r *Result) FirstCallDate() string {
	if len(r.CallDates) == 0 {
		return UnknownDate
	}
	return r.CallDates[0]
}

// LastCallDate returns the date of the last recorded call.
func (r *Result) LastCallDate() string {
	if len(r.CallDates) == 0 {
		return UnknownDate
	}
	return r.CallDates[len(r.CallDates)-1]
}

// SMSTallies returns the SMS counts, highest first.
func (r *Result) SMSTallies() []Tally {
	return SortTallies(r.SMS)
}

// MinuteTallies returns the call minutes, highest first.
func (r *Result) MinuteTallies() []Tally {
	return SortTallies(r.Minutes)
}

// IsEmpty reports whether nothing was accumulated.
func (r *Result) IsEmpty() bool {
	return len(r.SMS) == 0 && len(r.Minutes) == 0
}

// SortTallies orders counts by value descending, then by number ascending.
func SortTallies(counts map[string]int) []Tally {
	tallies := make([]Tally, 0, len(counts))
	for number, value := range counts {
		tallies = append(tallies, Tally{Number: number, Value: value})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Value != tallies[j].Value {
			return tallies[i].Value > tallies[j].Value
		}
		return tallies[i].Number < tallies[j].Number
	})
	return tallies
}
