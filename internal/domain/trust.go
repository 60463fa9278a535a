package domain

import "time"

// DefaultReputation is the score of a hospital with no recorded history.
const DefaultReputation = 75

type Reliability string

const (
	HighlyReliable Reliability = "HIGHLY_RELIABLE"
	Reliable       Reliability = "RELIABLE"
	Moderate       Reliability = "MODERATE"
	LowReliability Reliability = "LOW"
	Unreliable     Reliability = "UNRELIABLE"
)

// OutcomeKind enumerates the events that move trust counters.
type OutcomeKind string

const (
	OutcomeAccepted        OutcomeKind = "ACCEPTED"
	OutcomeDeclined        OutcomeKind = "DECLINED"
	OutcomeTimedOut        OutcomeKind = "TIMED_OUT"
	OutcomeDeliveredOnTime OutcomeKind = "DELIVERED_ON_TIME"
	OutcomeDeliveredLate   OutcomeKind = "DELIVERED_LATE"
	OutcomeDeliveryFailed  OutcomeKind = "DELIVERY_FAILED"
	OutcomeBorrowed        OutcomeKind = "BORROWED"
	OutcomeLent            OutcomeKind = "LENT"
	OutcomeReturned        OutcomeKind = "RETURNED"
	OutcomeReceivedBack    OutcomeKind = "RECEIVED_BACK"
	OutcomeRated           OutcomeKind = "RATED"
)

// Outcome is one trust-relevant event. Only the fields meaningful for Kind are read.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	// BORROWED, LENT, RETURNED, RECEIVED_BACK
	Units int `json:"units,omitempty"`
	// ACCEPTED, DECLINED
	LatencyMinutes float64 `json:"latencyMinutes,omitempty"`
	// ACCEPTED, DECLINED: the hospital answered after it was timed out, so the
	// notification is already counted and the answer replaces the timeout.
	AfterTimeout bool `json:"afterTimeout,omitempty"`
	// DELIVERED_ON_TIME, DELIVERED_LATE
	TemperatureReadings int `json:"temperatureReadings,omitempty"`
	CompliantReadings   int `json:"compliantReadings,omitempty"`
	// RATED
	Rating int  `json:"rating,omitempty"`
	Issue  bool `json:"issue,omitempty"`
}

// TrustCounters are the raw accumulated facts; all scores derive from them.
type TrustCounters struct {
	Received            int     `json:"received"`
	Accepted            int     `json:"accepted"`
	Declined            int     `json:"declined"`
	TimedOut            int     `json:"timedOut"`
	Responses           int     `json:"responses"`
	TotalLatencyMinutes float64 `json:"totalLatencyMinutes"`

	Deliveries          int `json:"deliveries"`
	OnTime              int `json:"onTime"`
	Delayed             int `json:"delayed"`
	Failed              int `json:"failed"`
	TemperatureReadings int `json:"temperatureReadings"`
	CompliantReadings   int `json:"compliantReadings"`

	UnitsBorrowed     int `json:"unitsBorrowed"`
	UnitsReturned     int `json:"unitsReturned"`
	UnitsLent         int `json:"unitsLent"`
	UnitsReceivedBack int `json:"unitsReceivedBack"`

	Ratings   int `json:"ratings"`
	RatingSum int `json:"ratingSum"`
	Issues    int `json:"issues"`
}

// AcceptanceRate is accepted/received in percent; zero without history.
func (c TrustCounters) AcceptanceRate() float64 {
	if c.Received == 0 {
		return 0
	}
	return float64(c.Accepted) / float64(c.Received) * 100
}

// MeanResponseMinutes is the mean latency of explicit responses.
func (c TrustCounters) MeanResponseMinutes() float64 {
	if c.Responses == 0 {
		return 0
	}
	return c.TotalLatencyMinutes / float64(c.Responses)
}

// TemperatureCompliance is in percent; 100 without readings.
func (c TrustCounters) TemperatureCompliance() float64 {
	if c.TemperatureReadings == 0 {
		return 100
	}
	return float64(c.CompliantReadings) / float64(c.TemperatureReadings) * 100
}

// OutstandingDebt is borrowed units not yet returned, never negative.
func (c TrustCounters) OutstandingDebt() int {
	if d := c.UnitsBorrowed - c.UnitsReturned; d > 0 {
		return d
	}
	return 0
}

type TrustScores struct {
	Response    float64     `json:"response"`
	Delivery    float64     `json:"delivery"`
	Credit      float64     `json:"credit"`
	Quality     float64     `json:"quality"`
	Overall     int         `json:"overall"`
	Reliability Reliability `json:"reliability"`
}

// TrustLedger is the per-hospital reputation record.
type TrustLedger struct {
	HospitalID string        `json:"hospitalId"`
	Counters   TrustCounters `json:"counters"`
	Scores     TrustScores   `json:"scores"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
