package valueobjects

import "fmt"

type TicketType string

const (
	TypeBug     TicketType = "BUG"
	TypeFeature TicketType = "FEATURE"
	TypeSupport TicketType = "SUPPORT"
	TypeTask    TicketType = "TASK"
)

var validTicketTypes = map[TicketType]bool{
	TypeBug:     true,
	TypeFeature: true,
	TypeSupport: true,
	TypeTask:    true,
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
