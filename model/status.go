package model

import (
	"encoding/json"
	"fmt"
)

// Status is the review state of a submission. Only Pending, InConversation
// and Approved are valid; the zero value is not.
type Status struct {
	code string
}

var (
	Pending        = Status{"pendente"}
	InConversation = Status{"em conversa"}
	Approved       = Status{"aprovado"}
)

// Statuses lists every valid status in display order.
var Statuses = []Status{Pending, InConversation, Approved}

//ParseStatus maps a persisted literal to its status
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if st.code == s {
			return st, nil
		}
	}
	return Status{}, fmt.Errorf("unknown status %q", s)
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s == Pending || s == InConversation || s == Approved
}

// String returns the persisted literal.
func (s Status) String() string {
	return s.code
}

// Label returns the name shown to reviewers.
func (s Status) Label() string {
	switch s {
	case Pending:
		return "Pendente"
	case InConversation:
		return "Em Conversa"
	case Approved:
		return "Aprovado"
	}
	return ""
}

// MarshalJSON writes the persisted literal and refuses the zero value.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %q", s.code)
	}
	return json.Marshal(s.code)
}

// UnmarshalJSON accepts only the three persisted literals.
func (s *Status) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	st, err := ParseStatus(code)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// StatusFilter selects submissions by status. All matches every submission.
type StatusFilter struct {
	status Status
	all    bool
}

// All matches every submission.
var All = StatusFilter{all: true}

// Only returns a filter matching a single status.
func Only(s Status) StatusFilter {
	return StatusFilter{status: s}
}

//ParseFilter accepts a status literal or one of the sentinels "all" and "todos"
func ParseFilter(s string) (StatusFilter, error) {
	if s == "all" || s == "todos" {
		return All, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return StatusFilter{}, err
	}
	return Only(st), nil
}

// Match reports whether a submission with status s passes the filter.
func (f StatusFilter) Match(s Status) bool {
	return f.all || f.status == s
}

func (f StatusFilter) String() string {
	if f.all {
		return "all"
	}
	return f.status.String()
}
