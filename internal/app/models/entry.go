package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EntryType discriminates the closed set of medical entry variants. The set is
// closed on purpose: every dispatcher over entries is written as an
// EntryVisitor, so adding a type here refuses to compile until each dispatcher
// grows the matching case.
type EntryType string

const (
	EntryTypeHealthCheck            EntryType = "HealthCheck"
	EntryTypeOccupationalHealthcare EntryType = "OccupationalHealthcare"
	EntryTypeHospital               EntryType = "Hospital"
)

// AllEntryTypes feeds the startup dispatch self-check and request validation.
var AllEntryTypes = []EntryType{
	EntryTypeHealthCheck,
	EntryTypeOccupationalHealthcare,
	EntryTypeHospital,
}

// ErrUnknownEntryType is returned when a wire payload carries a type tag
// outside the closed set. Reaching it from an in-memory Entry value is a
// contract violation between the model and its producers.
var ErrUnknownEntryType = errors.New("unknown entry type")

// EntryVisitor is the exhaustiveness guard: one method per variant, no
// default. A renderer or validator implemented as a visitor cannot miss a
// case without a compile error.
type EntryVisitor interface {
	VisitHealthCheck(entry *HealthCheckEntry)
	VisitOccupationalHealthcare(entry *OccupationalHealthcareEntry)
	VisitHospital(entry *HospitalEntry)
}

// Entry is the sealed union over the three entry variants. The unexported
// accept method keeps the set closed to this package.
type Entry interface {
	EntryType() EntryType
	Base() EntryBase
	accept(visitor EntryVisitor)
}

// VisitEntry dispatches an entry to the matching visitor method.
func VisitEntry(entry Entry, visitor EntryVisitor) {
	entry.accept(visitor)
}

// EntryBase carries the fields shared by every variant. ID is assigned by the
// record API on persist and is empty on a freshly built draft entry.
type EntryBase struct {
	ID             string   `json:"id,omitempty"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Specialist     string   `json:"specialist"`
	DiagnosisCodes []string `json:"diagnosisCodes,omitempty"`
}

// HealthCheckRating grades a health check, 0 best to 3 worst.
type HealthCheckRating int

const (
	RatingHealthy      HealthCheckRating = 0
	RatingLowRisk      HealthCheckRating = 1
	RatingHighRisk     HealthCheckRating = 2
	RatingCriticalRisk HealthCheckRating = 3
)

func (r HealthCheckRating) Valid() bool {
	return r >= RatingHealthy && r <= RatingCriticalRisk
}

// SickLeave is an optional period on occupational entries; when present both
// dates are set and StartDate <= EndDate.
type SickLeave struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Discharge is mandatory on hospital entries; the record is only well-formed
// once discharge is known.
type Discharge struct {
	Date     string `json:"date"`
	Criteria string `json:"criteria"`
}

type HealthCheckEntry struct {
	EntryBase
	HealthCheckRating HealthCheckRating `json:"healthCheckRating"`
}

func (e *HealthCheckEntry) EntryType() EntryType        { return EntryTypeHealthCheck }
func (e *HealthCheckEntry) Base() EntryBase             { return e.EntryBase }
func (e *HealthCheckEntry) accept(visitor EntryVisitor) { visitor.VisitHealthCheck(e) }

func (e *HealthCheckEntry) MarshalJSON() ([]byte, error) {
	type alias HealthCheckEntry
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		*alias
	}{Type: EntryTypeHealthCheck, alias: (*alias)(e)})
}

type OccupationalHealthcareEntry struct {
	EntryBase
	EmployerName string     `json:"employerName"`
	SickLeave    *SickLeave `json:"sickLeave,omitempty"`
}

func (e *OccupationalHealthcareEntry) EntryType() EntryType        { return EntryTypeOccupationalHealthcare }
func (e *OccupationalHealthcareEntry) Base() EntryBase             { return e.EntryBase }
func (e *OccupationalHealthcareEntry) accept(visitor EntryVisitor) { visitor.VisitOccupationalHealthcare(e) }

func (e *OccupationalHealthcareEntry) MarshalJSON() ([]byte, error) {
	type alias OccupationalHealthcareEntry
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		*alias
	}{Type: EntryTypeOccupationalHealthcare, alias: (*alias)(e)})
}

type HospitalEntry struct {
	EntryBase
	Discharge Discharge `json:"discharge"`
}

func (e *HospitalEntry) EntryType() EntryType        { return EntryTypeHospital }
func (e *HospitalEntry) Base() EntryBase             { return e.EntryBase }
func (e *HospitalEntry) accept(visitor EntryVisitor) { visitor.VisitHospital(e) }

func (e *HospitalEntry) MarshalJSON() ([]byte, error) {
	type alias HospitalEntry
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		*alias
	}{Type: EntryTypeHospital, alias: (*alias)(e)})
}

// UnmarshalEntry decodes a kind-tagged payload into the matching variant. The
// tag is read from the payload itself, never inferred structurally.
func UnmarshalEntry(data []byte) (Entry, error) {
	var probe struct {
		Type EntryType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case EntryTypeHealthCheck:
		entry := new(HealthCheckEntry)
		if err := json.Unmarshal(data, entry); err != nil {
			return nil, err
		}
		return entry, nil
	case EntryTypeOccupationalHealthcare:
		entry := new(OccupationalHealthcareEntry)
		if err := json.Unmarshal(data, entry); err != nil {
			return nil, err
		}
		return entry, nil
	case EntryTypeHospital:
		entry := new(HospitalEntry)
		if err := json.Unmarshal(data, entry); err != nil {
			return nil, err
		}
		return entry, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntryType, probe.Type)
	}
}

// VerifyEntryDispatch asserts at startup that every declared entry type
// round-trips through the wire codec and reaches its visitor method. It only
// fails when a new variant was declared without updating a dispatcher.
func VerifyEntryDispatch() error {
	for _, entryType := range AllEntryTypes {
		probe, err := probeEntry(entryType)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(probe)
		if err != nil {
			return fmt.Errorf("entry type %q does not marshal: %w", entryType, err)
		}
		decoded, err := UnmarshalEntry(encoded)
		if err != nil {
			return fmt.Errorf("entry type %q does not round-trip: %w", entryType, err)
		}
		if decoded.EntryType() != entryType {
			return fmt.Errorf("entry type %q decoded as %q", entryType, decoded.EntryType())
		}

		counter := &dispatchCounter{}
		VisitEntry(decoded, counter)
		if counter.visited != entryType {
			return fmt.Errorf("entry type %q dispatched to %q", entryType, counter.visited)
		}
	}
	return nil
}

func probeEntry(entryType EntryType) (Entry, error) {
	base := EntryBase{Description: "probe", Date: "2024-01-01", Specialist: "probe"}
	switch entryType {
	case EntryTypeHealthCheck:
		return &HealthCheckEntry{EntryBase: base, HealthCheckRating: RatingHealthy}, nil
	case EntryTypeOccupationalHealthcare:
		return &OccupationalHealthcareEntry{EntryBase: base, EmployerName: "probe"}, nil
	case EntryTypeHospital:
		return &HospitalEntry{EntryBase: base, Discharge: Discharge{Date: "2024-01-02", Criteria: "probe"}}, nil
	default:
		return nil, fmt.Errorf("%w: %q declared but not constructible", ErrUnknownEntryType, entryType)
	}
}

type dispatchCounter struct {
	visited EntryType
}

func (c *dispatchCounter) VisitHealthCheck(*HealthCheckEntry) { c.visited = EntryTypeHealthCheck }
func (c *dispatchCounter) VisitOccupationalHealthcare(*OccupationalHealthcareEntry) {
	c.visited = EntryTypeOccupationalHealthcare
}
func (c *dispatchCounter) VisitHospital(*HospitalEntry) { c.visited = EntryTypeHospital }
