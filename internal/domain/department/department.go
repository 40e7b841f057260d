// Package department defines the work-routing departments shared by
// projects, tasks, tickets and staff users.
package department

import "fmt"

type Department string

const (
	IT          Department = "IT"
	Datenschutz Department = "DATENSCHUTZ"
)

var validDepartments = map[Department]bool{
	IT:          true,
	Datenschutz: true,
}

func (d Department) String() string {
	return string(d)
}

func (d Department) IsValid() bool {
	return validDepartments[d]
}

func New(s string) (Department, error) {
	d := Department(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid department: %s", s)
	}
	return d, nil
}

// ParseList converts and validates a list of department names,
// dropping duplicates while preserving order.
func ParseList(names []string) ([]Department, error) {
	seen := make(map[Department]bool, len(names))
	out := make([]Department, 0, len(names))
	for _, name := range names {
		d, err := New(name)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out, nil
}

// Strings converts a department list back to its string form.
func Strings(departments []Department) []string {
	out := make([]string, 0, len(departments))
	for _, d := range departments {
		out = append(out, d.String())
	}
	return out
}

// Contains reports whether the list includes the department.
func Contains(departments []Department, d Department) bool {
	for _, item := range departments {
		if item == d {
			return true
		}
	}
	return false
}
