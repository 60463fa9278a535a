package domain

// Status is the closed set of request lifecycle states.
type Status string

const (
	StatusCreated                    Status = "CREATED"
	StatusMedicalVerificationPending Status = "MEDICAL_VERIFICATION_PENDING"
	StatusPartnerSearch              Status = "PARTNER_SEARCH"
	StatusPartnerAccepted            Status = "PARTNER_ACCEPTED"
	StatusDispatched                 Status = "DISPATCHED"
	StatusInTransit                  Status = "IN_TRANSIT"
	StatusDelivered                  Status = "DELIVERED"
	StatusCompleted                  Status = "COMPLETED"
	StatusCancelled                  Status = "CANCELLED"
	StatusFailed                     Status = "FAILED"
)

// order ranks statuses along the forward path; terminal failure states sit outside it.
var order = map[Status]int{
	StatusCreated:                    0,
	StatusMedicalVerificationPending: 1,
	StatusPartnerSearch:              2,
	StatusPartnerAccepted:            3,
	StatusDispatched:                 4,
	StatusInTransit:                  5,
	StatusDelivered:                  6,
	StatusCompleted:                  7,
}

// transitions is the only place legal edges are defined.
var transitions = map[Status][]Status{
	StatusCreated:                    {StatusMedicalVerificationPending, StatusPartnerAccepted},
	StatusMedicalVerificationPending: {StatusPartnerSearch, StatusPartnerAccepted},
	StatusPartnerSearch:              {StatusPartnerAccepted},
	StatusPartnerAccepted:            {StatusDispatched},
	StatusDispatched:                 {StatusInTransit, StatusDelivered},
	StatusInTransit:                  {StatusDelivered},
	StatusDelivered:                  {StatusCompleted},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if st.Valid() {
		return st, nil
	}
	return "", Validationf("unknown status %q", s)
}

func (s Status) Valid() bool {
	if _, ok := order[s]; ok {
		return true
	}
	return s == StatusCancelled || s == StatusFailed
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// Escalatable reports whether the timer-driven scheduler may promote a request in this state.
func (s Status) Escalatable() bool {
	return s == StatusCreated || s == StatusMedicalVerificationPending
}

// AwaitingPartner reports whether no partner has accepted yet.
func (s Status) AwaitingPartner() bool {
	return s == StatusCreated || s == StatusMedicalVerificationPending || s == StatusPartnerSearch
}

// HoldsLock reports whether a request in this state must carry a resource lock.
func (s Status) HoldsLock() bool {
	return s == StatusPartnerAccepted || s == StatusDispatched || s == StatusInTransit
}

// Dispatched reports whether units have physically left the lending hospital.
func (s Status) Dispatched() bool {
	return s == StatusDispatched || s == StatusInTransit
}

// CanTransition reports whether from -> to is a legal edge. CANCELLED and
// FAILED are reachable from every non-terminal state.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled || to == StatusFailed {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns an InvalidTransition error for illegal edges.
func CheckTransition(from, to Status) error {
	if CanTransition(from, to) {
		return nil
	}
	return &Error{Kind: KindInvalidTransition, Msg: "cannot move request from " + string(from) + " to " + string(to), From: from, To: to}
}
