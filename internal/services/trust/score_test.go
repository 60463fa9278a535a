package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloodlink/internal/domain"
)

func TestDefaultLedger(t *testing.T) {
	l := NewLedger("H1")
	assert.Equal(t, domain.DefaultReputation, l.Scores.Overall)
	assert.Equal(t, domain.Reliable, l.Scores.Reliability)
	assert.Equal(t, 75.0, l.Scores.Response)
	assert.Equal(t, 75.0, l.Scores.Delivery)
	assert.Equal(t, 75.0, l.Scores.Credit)
	assert.Equal(t, 75.0, l.Scores.Quality)
}

func TestComputeIsIdempotent(t *testing.T) {
	c := domain.TrustCounters{}
	for _, o := range []domain.Outcome{
		{Kind: domain.OutcomeAccepted, LatencyMinutes: 4},
		{Kind: domain.OutcomeDeclined, LatencyMinutes: 12},
		{Kind: domain.OutcomeTimedOut},
		{Kind: domain.OutcomeDeliveredLate, TemperatureReadings: 4, CompliantReadings: 3},
		{Kind: domain.OutcomeBorrowed, Units: 8},
		{Kind: domain.OutcomeRated, Rating: 4, Issue: true},
	} {
		c = Apply(c, o)
	}
	assert.Equal(t, Compute(c), Compute(c))
}

func TestResponseScore(t *testing.T) {
	t.Run("fast acceptor", func(t *testing.T) {
		c := Apply(domain.TrustCounters{}, domain.Outcome{Kind: domain.OutcomeAccepted, LatencyMinutes: 3})
		// 0.6*100 + 20
		assert.Equal(t, 80.0, ResponseScore(c))
	})
	t.Run("timeouts are penalised", func(t *testing.T) {
		c := Apply(domain.TrustCounters{}, domain.Outcome{Kind: domain.OutcomeAccepted, LatencyMinutes: 25})
		c = Apply(c, domain.Outcome{Kind: domain.OutcomeTimedOut})
		// 0.6*50 + 5 - 20*0.5
		assert.Equal(t, 25.0, ResponseScore(c))
	})
}

func TestApplyAnswerAfterTimeout(t *testing.T) {
	c := Apply(domain.TrustCounters{}, domain.Outcome{Kind: domain.OutcomeTimedOut})
	c = Apply(c, domain.Outcome{Kind: domain.OutcomeAccepted, LatencyMinutes: 9, AfterTimeout: true})
	assert.Equal(t, 1, c.Received)
	assert.Equal(t, 1, c.Accepted)
	assert.Zero(t, c.TimedOut)
	assert.Equal(t, 100.0, c.AcceptanceRate())

	// without a recorded timeout the answer counts as a fresh notification
	c = Apply(domain.TrustCounters{}, domain.Outcome{Kind: domain.OutcomeDeclined, AfterTimeout: true})
	assert.Equal(t, 1, c.Received)
	assert.Equal(t, 1, c.Declined)
}

func TestDeliveryScore(t *testing.T) {
	c := domain.TrustCounters{}
	c = Apply(c, domain.Outcome{Kind: domain.OutcomeDeliveredOnTime, TemperatureReadings: 2, CompliantReadings: 2})
	c = Apply(c, domain.Outcome{Kind: domain.OutcomeDeliveredOnTime})
	c = Apply(c, domain.Outcome{Kind: domain.OutcomeDeliveredLate})
	c = Apply(c, domain.Outcome{Kind: domain.OutcomeDeliveryFailed})
	// on-time 50%, temperature 100%, failure 25% -> penalty min(20, 2*0.25*20)=10
	assert.Equal(t, 0.7*50+0.3*100-10, DeliveryScore(c))
	assert.Equal(t, 4, c.Deliveries)
	assert.Equal(t, 1, c.Delayed)
}

func TestCreditScore(t *testing.T) {
	t.Run("neutral without borrowing", func(t *testing.T) {
		assert.Equal(t, 75.0, CreditScore(domain.TrustCounters{}))
	})
	t.Run("unreturned debt", func(t *testing.T) {
		c := domain.TrustCounters{UnitsBorrowed: 12}
		assert.Equal(t, 30.0, CreditScore(c))
		c.UnitsReturned = 6
		assert.Equal(t, 65.0, CreditScore(c))
		c.UnitsReturned = 12
		assert.Equal(t, 100.0, CreditScore(c))
	})
	t.Run("net lender bonus is capped", func(t *testing.T) {
		assert.Equal(t, 81.0, CreditScore(domain.TrustCounters{UnitsLent: 3}))
		assert.Equal(t, 95.0, CreditScore(domain.TrustCounters{UnitsLent: 40}))
	})
	t.Run("debt never negative", func(t *testing.T) {
		c := domain.TrustCounters{UnitsBorrowed: 2, UnitsReturned: 5}
		assert.Zero(t, c.OutstandingDebt())
		assert.Equal(t, 100.0, CreditScore(c))
	})
}

func TestQualityScore(t *testing.T) {
	c := Apply(domain.TrustCounters{}, domain.Outcome{Kind: domain.OutcomeRated, Rating: 5})
	c = Apply(c, domain.Outcome{Kind: domain.OutcomeRated, Rating: 3, Issue: true})
	// mean 4 -> 80, issue rate 0.5 -> -15
	assert.Equal(t, 65.0, QualityScore(c))

	ignored := Apply(c, domain.Outcome{Kind: domain.OutcomeRated, Rating: 9})
	assert.Equal(t, c, ignored)
}

func TestRate(t *testing.T) {
	cases := map[int]domain.Reliability{
		100: domain.HighlyReliable, 85: domain.HighlyReliable, 84: domain.Reliable, 70: domain.Reliable,
		69: domain.Moderate, 50: domain.Moderate, 49: domain.LowReliability, 30: domain.LowReliability,
		29: domain.Unreliable, 0: domain.Unreliable,
	}
	for score, want := range cases {
		assert.Equal(t, want, Rate(score), "score %d", score)
	}
}

func TestScoresStayInRange(t *testing.T) {
	worst := domain.TrustCounters{Received: 10, TimedOut: 10, Deliveries: 5, Failed: 5, TemperatureReadings: 3, UnitsBorrowed: 50, Ratings: 2, RatingSum: 2, Issues: 2}
	s := Compute(worst)
	for _, v := range []float64{s.Response, s.Delivery, s.Credit, s.Quality} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
	assert.Equal(t, domain.Unreliable, s.Reliability)
}
