package domain

import (
	"strings"
	"time"
)

// Core domain models used by the services and adapters. HTTP payloads are
// decoded into these directly; storage adapters persist them as-is.

type BloodGroup string

const (
	GroupAPos  BloodGroup = "A+"
	GroupANeg  BloodGroup = "A-"
	GroupBPos  BloodGroup = "B+"
	GroupBNeg  BloodGroup = "B-"
	GroupABPos BloodGroup = "AB+"
	GroupABNeg BloodGroup = "AB-"
	GroupOPos  BloodGroup = "O+"
	GroupONeg  BloodGroup = "O-"
)

var bloodGroups = []BloodGroup{GroupAPos, GroupANeg, GroupBPos, GroupBNeg, GroupABPos, GroupABNeg, GroupOPos, GroupONeg}

// BloodGroups lists the eight ABO/Rh groups.
func BloodGroups() []BloodGroup {
	out := make([]BloodGroup, len(bloodGroups))
	copy(out, bloodGroups)
	return out
}

// ParseBloodGroup accepts the canonical notation, case-insensitively.
func ParseBloodGroup(s string) (BloodGroup, error) {
	g := BloodGroup(strings.ToUpper(strings.TrimSpace(s)))
	if g.Valid() {
		return g, nil
	}
	return "", Validationf("unknown blood group %q", s)
}

func (g BloodGroup) Valid() bool {
	for _, b := range bloodGroups {
		if g == b {
			return true
		}
	}
	return false
}

// RhNegative reports whether the group is one of the scarce Rh- types.
func (g BloodGroup) RhNegative() bool { return strings.HasSuffix(string(g), "-") }

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityModerate Severity = "MODERATE"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityModerate:
		return true
	}
	return false
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Hospital struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  Location `json:"location"`
	Suspended bool     `json:"suspended,omitempty"`
}

type PatientContext struct {
	Age        int       `json:"age"`
	Diagnosis  string    `json:"diagnosis"`
	RequiredBy time.Time `json:"requiredBy"`
}

// Demand is the caller-supplied part of a new emergency request.
type Demand struct {
	HospitalID    string         `json:"hospitalId"`
	BloodGroup    BloodGroup     `json:"bloodGroup"`
	UnitsRequired int            `json:"unitsRequired"`
	Severity      Severity       `json:"severity"`
	Patient       PatientContext `json:"patient"`
	Actor         string         `json:"actor,omitempty"`
}

func (d Demand) Validate() error {
	if strings.TrimSpace(d.HospitalID) == "" {
		return Validationf("hospitalId is required")
	}
	if !d.BloodGroup.Valid() {
		return Validationf("unknown blood group %q", d.BloodGroup)
	}
	if d.UnitsRequired <= 0 {
		return Validationf("unitsRequired must be positive, got %d", d.UnitsRequired)
	}
	if !d.Severity.Valid() {
		return Validationf("unknown severity %q", d.Severity)
	}
	if d.Patient.Age < 0 {
		return Validationf("patient age must not be negative")
	}
	if strings.TrimSpace(d.Patient.Diagnosis) == "" {
		return Validationf("patient diagnosis is required")
	}
	if d.Patient.RequiredBy.IsZero() {
		return Validationf("patient requiredBy is required")
	}
	return nil
}

// ResourceLock ties reserved inventory at the lending hospital to one request.
type ResourceLock struct {
	HospitalID string     `json:"hospitalId"`
	BloodGroup BloodGroup `json:"bloodGroup"`
	Units      int        `json:"units"`
	AcquiredAt time.Time  `json:"acquiredAt"`
}

// AuditEntry is one append-only history record on a request.
type AuditEntry struct {
	At        time.Time `json:"at"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	OldStatus Status    `json:"oldStatus"`
	NewStatus Status    `json:"newStatus"`
	Note      string    `json:"note,omitempty"`
}

// Audit actions.
const (
	ActionCreated          = "CREATED"
	ActionVerificationSent = "VERIFICATION_REQUESTED"
	ActionVerified         = "VERIFIED"
	ActionAccepted         = "ACCEPTED"
	ActionDeclined         = "DECLINED"
	ActionDispatched       = "DISPATCHED"
	ActionInTransit        = "IN_TRANSIT"
	ActionDelivered        = "DELIVERED"
	ActionCompleted        = "COMPLETED"
	ActionCancelled        = "CANCELLED"
	ActionFailed           = "FAILED"
	ActionEscalated        = "ESCALATED"
	ActionManualEscalation = "MANUAL_ESCALATION"
	ActionUnitsReturned    = "UNITS_RETURNED"
)

type Acceptance struct {
	HospitalID     string    `json:"hospitalId"`
	UnitsCommitted int       `json:"unitsCommitted"`
	ETAMinutes     int       `json:"etaMinutes"`
	AcceptedAt     time.Time `json:"acceptedAt"`
}

type Decline struct {
	HospitalID string    `json:"hospitalId"`
	Reason     string    `json:"reason"`
	At         time.Time `json:"at"`
}

// EmergencyRequest is one active blood shortage event.
type EmergencyRequest struct {
	ID              string         `json:"id"`
	HospitalID      string         `json:"hospitalId"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	BloodGroup      BloodGroup     `json:"bloodGroup"`
	UnitsRequired   int            `json:"unitsRequired"`
	Severity        Severity       `json:"severity"`
	Patient         PatientContext `json:"patient"`
	UrgencyScore    int            `json:"urgencyScore"`
	EscalationLevel int            `json:"escalationLevel"`
	Status          Status         `json:"status"`

	Acceptance    *Acceptance   `json:"acceptance,omitempty"`
	Lock          *ResourceLock `json:"lock,omitempty"`
	TransferID    string        `json:"transferId,omitempty"`
	UnitsReturned int           `json:"unitsReturned,omitempty"`

	Declines   []Decline            `json:"declines,omitempty"`
	Notified   map[string]time.Time `json:"notified,omitempty"`
	TimedOut   []string             `json:"timedOut,omitempty"`
	Candidates []Candidate          `json:"candidates,omitempty"`
	History    []AuditEntry         `json:"history"`

	// Version guards optimistic updates in the stores.
	Version int64 `json:"version"`
}

// Declined reports whether the hospital has already declined this request.
func (r *EmergencyRequest) Declined(hospitalID string) bool {
	for _, d := range r.Declines {
		if d.HospitalID == hospitalID {
			return true
		}
	}
	return false
}

// Responded reports whether the hospital accepted, declined or timed out.
func (r *EmergencyRequest) Responded(hospitalID string) bool {
	if r.Acceptance != nil && r.Acceptance.HospitalID == hospitalID {
		return true
	}
	return r.Declined(hospitalID) || r.HasTimedOut(hospitalID)
}

// HasTimedOut reports whether the hospital was already counted as not answering.
func (r *EmergencyRequest) HasTimedOut(hospitalID string) bool {
	for _, id := range r.TimedOut {
		if id == hospitalID {
			return true
		}
	}
	return false
}

// Append adds a history entry; entries are never rewritten.
func (r *EmergencyRequest) Append(at time.Time, action, actor string, from, to Status, note string) {
	r.History = append(r.History, AuditEntry{At: at, Action: action, Actor: actor, OldStatus: from, NewStatus: to, Note: note})
	r.UpdatedAt = at
}

// Clone returns a deep copy so callers never share slices or maps with a store.
func (r *EmergencyRequest) Clone() *EmergencyRequest {
	if r == nil {
		return nil
	}
	c := *r
	if r.Acceptance != nil {
		a := *r.Acceptance
		c.Acceptance = &a
	}
	if r.Lock != nil {
		l := *r.Lock
		c.Lock = &l
	}
	c.Declines = append([]Decline(nil), r.Declines...)
	c.TimedOut = append([]string(nil), r.TimedOut...)
	c.Candidates = append([]Candidate(nil), r.Candidates...)
	c.History = append([]AuditEntry(nil), r.History...)
	if r.Notified != nil {
		c.Notified = make(map[string]time.Time, len(r.Notified))
		for k, v := range r.Notified {
			c.Notified[k] = v
		}
	}
	return &c
}

// RequestFilter narrows list-requests. Zero fields match everything.
type RequestFilter struct {
	Status      Status
	BloodGroup  BloodGroup
	Severity    Severity
	HospitalID  string
	CreatedFrom time.Time
	CreatedTo   time.Time
}

func (f RequestFilter) Match(r *EmergencyRequest) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.BloodGroup != "" && r.BloodGroup != f.BloodGroup {
		return false
	}
	if f.Severity != "" && r.Severity != f.Severity {
		return false
	}
	if f.HospitalID != "" && r.HospitalID != f.HospitalID {
		return false
	}
	if !f.CreatedFrom.IsZero() && r.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && !r.CreatedAt.Before(f.CreatedTo) {
		return false
	}
	return true
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Candidate is one ranked partner hospital for a request.
type Candidate struct {
	HospitalID               string     `json:"hospitalId"`
	Score                    float64    `json:"score"`
	DistanceKm               float64    `json:"distanceKm"`
	AvailableUnits           int        `json:"availableUnits"`
	EstimatedResponseMinutes int        `json:"estimatedResponseMinutes"`
	Confidence               Confidence `json:"confidence"`
}

// EscalationStats summarises escalation behaviour over a creation-time range.
type EscalationStats struct {
	From                    time.Time   `json:"from"`
	To                      time.Time   `json:"to"`
	TotalRequests           int         `json:"totalRequests"`
	Escalated               int         `json:"escalated"`
	ByLevel                 map[int]int `json:"byLevel"`
	AutoPromotions          int         `json:"autoPromotions"`
	ManualPromotions        int         `json:"manualPromotions"`
	AuthorityAlerts         int         `json:"authorityAlerts"`
	Accepted                int         `json:"accepted"`
	MeanMinutesToAcceptance float64     `json:"meanMinutesToAcceptance"`
}
