package trust

import (
	"math"

	"bloodlink/internal/domain"
)

// Apply folds one outcome into the raw counters. Unknown kinds and negative
// quantities leave the counters unchanged.
func Apply(c domain.TrustCounters, o domain.Outcome) domain.TrustCounters {
	units := o.Units
	if units < 0 {
		units = 0
	}
	latency := math.Max(0, o.LatencyMinutes)
	switch o.Kind {
	case domain.OutcomeAccepted, domain.OutcomeDeclined:
		if o.AfterTimeout && c.TimedOut > 0 {
			c.TimedOut--
		} else {
			c.Received++
		}
		if o.Kind == domain.OutcomeAccepted {
			c.Accepted++
		} else {
			c.Declined++
		}
		c.Responses++
		c.TotalLatencyMinutes += latency
	case domain.OutcomeTimedOut:
		c.Received++
		c.TimedOut++
	case domain.OutcomeDeliveredOnTime, domain.OutcomeDeliveredLate:
		c.Deliveries++
		if o.Kind == domain.OutcomeDeliveredOnTime {
			c.OnTime++
		} else {
			c.Delayed++
		}
		if o.TemperatureReadings > 0 {
			c.TemperatureReadings += o.TemperatureReadings
			c.CompliantReadings += min(max(o.CompliantReadings, 0), o.TemperatureReadings)
		}
	case domain.OutcomeDeliveryFailed:
		c.Deliveries++
		c.Failed++
	case domain.OutcomeBorrowed:
		c.UnitsBorrowed += units
	case domain.OutcomeLent:
		c.UnitsLent += units
	case domain.OutcomeReturned:
		c.UnitsReturned += units
	case domain.OutcomeReceivedBack:
		c.UnitsReceivedBack += units
	case domain.OutcomeRated:
		if o.Rating >= 1 && o.Rating <= 5 {
			c.Ratings++
			c.RatingSum += o.Rating
			if o.Issue {
				c.Issues++
			}
		}
	}
	return c
}

// Compute derives every score from the counters. It is pure: identical
// counters always yield identical scores.
func Compute(c domain.TrustCounters) domain.TrustScores {
	s := domain.TrustScores{
		Response: ResponseScore(c),
		Delivery: DeliveryScore(c),
		Credit:   CreditScore(c),
		Quality:  QualityScore(c),
	}
	s.Overall = int(math.Round(0.3*s.Response + 0.3*s.Delivery + 0.2*s.Credit + 0.2*s.Quality))
	s.Reliability = Rate(s.Overall)
	return s
}

// Rate maps an overall score onto the reliability scale.
func Rate(overall int) domain.Reliability {
	switch {
	case overall >= 85:
		return domain.HighlyReliable
	case overall >= 70:
		return domain.Reliable
	case overall >= 50:
		return domain.Moderate
	case overall >= 30:
		return domain.LowReliability
	default:
		return domain.Unreliable
	}
}

// ResponseScore = 0.6*acceptance + time bonus (<=20) - timeout penalty (<=20).
func ResponseScore(c domain.TrustCounters) float64 {
	if c.Received == 0 {
		return domain.DefaultReputation
	}
	score := 0.6 * c.AcceptanceRate()
	if c.Responses > 0 {
		score += timeBonus(c.MeanResponseMinutes())
	}
	score -= 20 * float64(c.TimedOut) / float64(c.Received)
	return clamp(score)
}

func timeBonus(meanMinutes float64) float64 {
	switch {
	case meanMinutes <= 5:
		return 20
	case meanMinutes <= 10:
		return 15
	case meanMinutes <= 20:
		return 10
	case meanMinutes <= 30:
		return 5
	default:
		return 0
	}
}

// DeliveryScore = 0.7*on-time + 0.3*temperature compliance - failure penalty (<=20, double weighted).
func DeliveryScore(c domain.TrustCounters) float64 {
	if c.Deliveries == 0 {
		return domain.DefaultReputation
	}
	total := float64(c.Deliveries)
	onTime := float64(c.OnTime) / total * 100
	failure := float64(c.Failed) / total
	score := 0.7*onTime + 0.3*c.TemperatureCompliance() - math.Min(20, 2*failure*20)
	return clamp(score)
}

// CreditScore starts neutral, scales with the return rate of borrowed units,
// is penalised for outstanding debt and rewarded for net lending.
func CreditScore(c domain.TrustCounters) float64 {
	score := float64(domain.DefaultReputation)
	if c.UnitsBorrowed > 0 {
		returned := math.Min(1, float64(c.UnitsReturned)/float64(c.UnitsBorrowed))
		score = 50 + 50*returned
	}
	switch debt := c.OutstandingDebt(); {
	case debt > 10:
		score -= 20
	case debt > 5:
		score -= 10
	}
	if net := c.UnitsLent - c.UnitsBorrowed; net > 0 {
		score += math.Min(20, 2*float64(net))
	}
	return clamp(score)
}

// QualityScore scales the mean 5-point rating to 100, less up to 30 for the issue rate.
func QualityScore(c domain.TrustCounters) float64 {
	if c.Ratings == 0 {
		return domain.DefaultReputation
	}
	mean := float64(c.RatingSum) / float64(c.Ratings)
	issueRate := float64(c.Issues) / float64(c.Ratings)
	return clamp(mean/5*100 - 30*issueRate)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
