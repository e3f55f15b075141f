// Package lottery compares a lottery ticket against the drawn numbers.
package lottery

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alem-hub/school-tools/internal/domain/shared"
)

// ExpectedFormat describes the accepted textual input for ParseNumbers.
const ExpectedFormat = "expected whitespace-separated integers"

// Numbers is an ordered sequence of ticket or drawn numbers.
// Duplicates are allowed.
type Numbers []int

// String returns the numbers joined by single spaces.
func (n Numbers) String() string {
	parts := make([]string, len(n))
	for i, v := range n {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Contains reports whether v is one of the numbers.
func (n Numbers) Contains(v int) bool {
	for _, x := range n {
		if x == v {
			return true
		}
	}
	return false
}

// ParseNumbers splits text on whitespace and converts every token to an int.
// Blank input yields an empty sequence. Tokens outside the int range are
// reported as out of range.
func ParseNumbers(text string) (Numbers, error) {
	fields := strings.Fields(text)
	numbers := make(Numbers, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			msg := fmt.Sprintf("%s, got %q", ExpectedFormat, field)
			if errors.Is(err, strconv.ErrRange) {
				msg = fmt.Sprintf("number %s is out of range [%d, %d]", field, math.MinInt, math.MaxInt)
			}
			return nil, shared.WrapError("lottery", "ParseNumbers", shared.ErrParse, msg, err)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

// Ticket is a parsed ticket together with the winning numbers it is checked against.
type Ticket struct {
	Numbers Numbers
	Winning Numbers
}

// NewTicket parses both the ticket and the winning numbers.
func NewTicket(ticket, winning string) (*Ticket, error) {
	numbers, err := ParseNumbers(ticket)
	if err != nil {
		return nil, fmt.Errorf("ticket: %w", err)
	}

	drawn, err := ParseNumbers(winning)
	if err != nil {
		return nil, fmt.Errorf("winning numbers: %w", err)
	}

	return &Ticket{Numbers: numbers, Winning: drawn}, nil
}

// Check compares the ticket with the winning numbers.
func (t *Ticket) Check() Result {
	return Compare(t.Numbers, t.Winning)
}

// Result holds the ticket numbers that were drawn.
type Result struct {
	Matches Numbers
}

// Compare returns the values of ticket that also appear in winning.
// Ticket order and multiplicity are preserved: a ticket value listed twice
// is reported twice.
func Compare(ticket, winning Numbers) Result {
	drawn := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		drawn[n] = struct{}{}
	}

	matches := make(Numbers, 0)
	for _, n := range ticket {
		if _, ok := drawn[n]; ok {
			matches = append(matches, n)
		}
	}

	return Result{Matches: matches}
}

// Count returns the number of matches.
func (r Result) Count() int {
	return len(r.Matches)
}

// HasMatches reports whether at least one ticket number was drawn.
func (r Result) HasMatches() bool {
	return len(r.Matches) > 0
}

// Summary renders the human-readable report printed by the CLI.
func (r Result) Summary() string {
	if !r.HasMatches() {
		return "No matching numbers."
	}
	return fmt.Sprintf("Matching numbers: [%s]\nMatch count: %d", r.Matches, r.Count())
}
