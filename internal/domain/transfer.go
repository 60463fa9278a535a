package domain

import (
	"math"
	"time"
)

// Cold-chain band for stored red cells, in degrees Celsius.
const (
	MinStorageCelsius = 2.0
	MaxStorageCelsius = 6.0
)

type TransferStatus string

const (
	TransferDispatched TransferStatus = "DISPATCHED"
	TransferInTransit  TransferStatus = "IN_TRANSIT"
	TransferDelivered  TransferStatus = "DELIVERED"
	TransferFailed     TransferStatus = "FAILED"
)

func (s TransferStatus) Terminal() bool { return s == TransferDelivered || s == TransferFailed }

// TransportInfo is supplied at dispatch.
type TransportInfo struct {
	Vehicle          string    `json:"vehicle"`
	Driver           string    `json:"driver"`
	Contact          string    `json:"contact,omitempty"`
	EstimatedArrival time.Time `json:"estimatedArrival,omitempty"`
	Actor            string    `json:"actor,omitempty"`
}

type TrackPoint struct {
	At       time.Time `json:"at"`
	Location Location  `json:"location"`
}

type TemperatureReading struct {
	At        time.Time `json:"at"`
	Celsius   float64   `json:"celsius"`
	Compliant bool      `json:"compliant"`
}

// NewTemperatureReading flags the reading against the storage band.
func NewTemperatureReading(at time.Time, celsius float64) TemperatureReading {
	return TemperatureReading{At: at, Celsius: celsius, Compliant: celsius >= MinStorageCelsius && celsius <= MaxStorageCelsius}
}

// DeliveryChecklist is filled in by the receiving hospital.
type DeliveryChecklist struct {
	PackagingIntact       bool   `json:"packagingIntact"`
	SealsIntact           bool   `json:"sealsIntact"`
	LabelsMatch           bool   `json:"labelsMatch"`
	DocumentationComplete bool   `json:"documentationComplete"`
	Rating                int    `json:"rating"`
	ReceivedBy            string `json:"receivedBy"`
	Notes                 string `json:"notes,omitempty"`
}

// Issue reports whether any integrity check failed.
func (c DeliveryChecklist) Issue() bool {
	return !c.PackagingIntact || !c.SealsIntact || !c.LabelsMatch || !c.DocumentationComplete
}

func (c DeliveryChecklist) Validate() error {
	if c.Rating < 1 || c.Rating > 5 {
		return Validationf("checklist rating must be 1-5, got %d", c.Rating)
	}
	return nil
}

// TransferMetrics are computed once when the transfer completes.
type TransferMetrics struct {
	OnTime               bool    `json:"onTime"`
	DelayMinutes         int     `json:"delayMinutes"`
	TemperatureCompliant float64 `json:"temperatureCompliance"`
	RouteEfficiency      float64 `json:"routeEfficiency"`
	TemperatureReadings  int     `json:"temperatureReadings"`
	CompliantReadings    int     `json:"compliantReadings"`
}

// BloodTransfer is one physical movement of units between two hospitals.
type BloodTransfer struct {
	ID              string               `json:"id"`
	RequestID       string               `json:"requestId"`
	FromHospitalID  string               `json:"fromHospitalId"`
	ToHospitalID    string               `json:"toHospitalId"`
	BloodGroup      BloodGroup           `json:"bloodGroup"`
	Units           int                  `json:"units"`
	UnitsReceived   int                  `json:"unitsReceived"`
	Status          TransferStatus       `json:"status"`
	Transport       TransportInfo        `json:"transport"`
	DispatchedAt    time.Time            `json:"dispatchedAt"`
	ExpectedArrival time.Time            `json:"expectedArrival"`
	DeliveredAt     *time.Time           `json:"deliveredAt,omitempty"`
	Origin          Location             `json:"origin"`
	Destination     Location             `json:"destination"`
	Track           []TrackPoint         `json:"track"`
	Temperatures    []TemperatureReading `json:"temperatures"`
	Checklist       *DeliveryChecklist   `json:"checklist,omitempty"`
	Metrics         *TransferMetrics     `json:"metrics,omitempty"`
	FailureReason   string               `json:"failureReason,omitempty"`
	Version         int64                `json:"version"`
}

// AddTrackPoint appends a GPS point; timestamps must strictly increase.
func (t *BloodTransfer) AddTrackPoint(p TrackPoint) error {
	if n := len(t.Track); n > 0 && !p.At.After(t.Track[n-1].At) {
		return Validationf("track point at %s is not after %s", p.At.Format(time.RFC3339), t.Track[n-1].At.Format(time.RFC3339))
	}
	t.Track = append(t.Track, p)
	return nil
}

// AddTemperature appends a reading; timestamps must not go backwards.
func (t *BloodTransfer) AddTemperature(r TemperatureReading) error {
	if n := len(t.Temperatures); n > 0 && r.At.Before(t.Temperatures[n-1].At) {
		return Validationf("temperature reading at %s precedes the last reading", r.At.Format(time.RFC3339))
	}
	t.Temperatures = append(t.Temperatures, r)
	return nil
}

// ComputeMetrics derives the performance metrics for a delivery at the given time.
func (t *BloodTransfer) ComputeMetrics(deliveredAt time.Time) TransferMetrics {
	m := TransferMetrics{TemperatureCompliant: 100, RouteEfficiency: 1}
	if !t.ExpectedArrival.IsZero() && deliveredAt.After(t.ExpectedArrival) {
		m.DelayMinutes = int(math.Ceil(deliveredAt.Sub(t.ExpectedArrival).Minutes()))
	}
	m.OnTime = m.DelayMinutes == 0
	m.TemperatureReadings = len(t.Temperatures)
	for _, r := range t.Temperatures {
		if r.Compliant {
			m.CompliantReadings++
		}
	}
	if m.TemperatureReadings > 0 {
		m.TemperatureCompliant = float64(m.CompliantReadings) / float64(m.TemperatureReadings) * 100
	}
	path := 0.0
	prev := t.Origin
	for _, p := range t.Track {
		path += HaversineKm(prev, p.Location)
		prev = p.Location
	}
	path += HaversineKm(prev, t.Destination)
	if direct := HaversineKm(t.Origin, t.Destination); path > 0 && len(t.Track) > 0 {
		m.RouteEfficiency = math.Min(1, direct/path)
	}
	return m
}

func (t *BloodTransfer) Clone() *BloodTransfer {
	if t == nil {
		return nil
	}
	c := *t
	c.Track = append([]TrackPoint(nil), t.Track...)
	c.Temperatures = append([]TemperatureReading(nil), t.Temperatures...)
	if t.DeliveredAt != nil {
		d := *t.DeliveredAt
		c.DeliveredAt = &d
	}
	if t.Checklist != nil {
		ch := *t.Checklist
		c.Checklist = &ch
	}
	if t.Metrics != nil {
		m := *t.Metrics
		c.Metrics = &m
	}
	return &c
}

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two points.
func HaversineKm(a, b Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
