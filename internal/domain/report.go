package domain

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// SymptomSet is an unordered set of symptoms. Values are immutable: Toggle
// returns a new set.
type SymptomSet struct {
	m map[SymptomID]struct{}
}

// NewSymptomSet builds a set from ids, dropping duplicates.
func NewSymptomSet(ids ...SymptomID) SymptomSet {
	s := SymptomSet{m: make(map[SymptomID]struct{}, len(ids))}
	for _, id := range ids {
		s.m[id] = struct{}{}
	}
	return s
}

// Toggle adds id when absent and removes it when present.
func (s SymptomSet) Toggle(id SymptomID) SymptomSet {
	next := NewSymptomSet(s.Sorted()...)
	if _, ok := next.m[id]; ok {
		delete(next.m, id)
	} else {
		next.m[id] = struct{}{}
	}
	return next
}

func (s SymptomSet) Has(id SymptomID) bool {
	_, ok := s.m[id]
	return ok
}

func (s SymptomSet) Len() int {
	return len(s.m)
}

// Sorted returns the members in lexical order.
func (s SymptomSet) Sorted() []SymptomID {
	ids := make([]SymptomID, 0, len(s.m))
	for id := range s.m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b SymptomID) int { return strings.Compare(string(a), string(b)) })
	return ids
}

// Equal reports whether both sets hold the same members.
func (s SymptomSet) Equal(other SymptomSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.m {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s SymptomSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *SymptomSet) UnmarshalJSON(data []byte) error {
	var ids []SymptomID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSymptomSet(ids...)
	return nil
}

// EmergencyReport is the payload a resident composes and submits.
type EmergencyReport struct {
	Symptoms    SymptomSet `json:"symptoms"`
	Severity    Severity   `json:"severity"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewEmergencyReport returns an empty report at the default severity.
func NewEmergencyReport(location string) EmergencyReport {
	return EmergencyReport{
		Symptoms:  NewSymptomSet(),
		Severity:  DefaultSeverity,
		Location:  location,
		CreatedAt: clock.Now(),
	}
}

// Validate checks the submission precondition.
func (r EmergencyReport) Validate() error {
	if r.Symptoms.Len() == 0 {
		return ErrNoSymptoms
	}
	if !r.Severity.Valid() {
		return &ValidationError{Field: "severity", Reason: "unknown severity " + string(r.Severity)}
	}
	return nil
}

// DispatchReceipt is the dispatch service's acknowledgement of a report.
type DispatchReceipt struct {
	ReferenceID string `json:"reference_id"`
	ETAMinutes  int    `json:"eta_minutes"`
}
