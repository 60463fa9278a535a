package httpadapter

import (
	"context"
	"strings"

	api "bloodlink/internal/api"
	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) CreateRequest(ctx context.Context, req api.CreateRequestRequestObject) (api.CreateRequestResponseObject, error) {
	r, err := s.requests.Create(ctx, domain.Demand(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.CreateRequest201JSONResponse(*r), nil
}

func (s *Server) ListRequests(ctx context.Context, req api.ListRequestsRequestObject) (api.ListRequestsResponseObject, error) {
	p := req.Params
	var (
		f   domain.RequestFilter
		err error
	)
	if p.Status != nil {
		if f.Status, err = domain.ParseStatus(*p.Status); err != nil {
			return nil, err
		}
	}
	if p.BloodGroup != nil {
		// an unescaped "+" in a query string arrives as a space
		if f.BloodGroup, err = domain.ParseBloodGroup(strings.ReplaceAll(*p.BloodGroup, " ", "+")); err != nil {
			return nil, err
		}
	}
	if p.Severity != nil {
		f.Severity = domain.Severity(*p.Severity)
		if !f.Severity.Valid() {
			return nil, domain.Validationf("unknown severity %q", *p.Severity)
		}
	}
	f.HospitalID = deref(p.HospitalId)
	f.CreatedFrom = deref(p.CreatedFrom)
	f.CreatedTo = deref(p.CreatedTo)

	reqs, err := s.requests.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make(api.ListRequests200JSONResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, *r)
	}
	return out, nil
}

func (s *Server) GetRequest(ctx context.Context, req api.GetRequestRequestObject) (api.GetRequestResponseObject, error) {
	r, err := s.requests.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetRequest200JSONResponse(*r), nil
}

func (s *Server) GetCandidates(ctx context.Context, req api.GetCandidatesRequestObject) (api.GetCandidatesResponseObject, error) {
	cs, err := s.requests.Candidates(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		cs = []domain.Candidate{}
	}
	return api.GetCandidates200JSONResponse(cs), nil
}

// GetRequestHistory prefers the audit archive and falls back to the history
// embedded in the request.
func (s *Server) GetRequestHistory(ctx context.Context, req api.GetRequestHistoryRequestObject) (api.GetRequestHistoryResponseObject, error) {
	r, err := s.requests.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if s.history != nil {
		events, err := s.history.History(ctx, req.Id)
		if err != nil {
			return nil, err
		}
		if events == nil {
			events = []ports.AuditEvent{}
		}
		return api.GetRequestHistory200JSONResponse(events), nil
	}
	events := make(api.GetRequestHistory200JSONResponse, 0, len(r.History))
	for _, e := range r.History {
		events = append(events, ports.AuditEvent{
			At: e.At, RequestID: req.Id, Action: e.Action, Actor: e.Actor,
			OldStatus: e.OldStatus, NewStatus: e.NewStatus, Note: e.Note,
		})
	}
	return events, nil
}

// actorOf unpacks the optional actor body shared by the plain transitions.
func actorOf(b *api.ActorBody) (actor, reason string) {
	if b == nil {
		return "", ""
	}
	return deref(b.Actor), deref(b.Reason)
}

func (s *Server) SubmitForVerification(ctx context.Context, req api.SubmitForVerificationRequestObject) (api.SubmitForVerificationResponseObject, error) {
	actor, _ := actorOf(req.Body)
	r, err := s.requests.SubmitForVerification(ctx, req.Id, actor)
	if err != nil {
		return nil, err
	}
	return api.SubmitForVerification200JSONResponse(*r), nil
}

func (s *Server) VerifyRequest(ctx context.Context, req api.VerifyRequestRequestObject) (api.VerifyRequestResponseObject, error) {
	actor, _ := actorOf(req.Body)
	r, err := s.requests.Verify(ctx, req.Id, actor)
	if err != nil {
		return nil, err
	}
	return api.VerifyRequest200JSONResponse(*r), nil
}

func (s *Server) CancelRequest(ctx context.Context, req api.CancelRequestRequestObject) (api.CancelRequestResponseObject, error) {
	actor, reason := actorOf(req.Body)
	r, err := s.requests.Cancel(ctx, req.Id, actor, reason)
	if err != nil {
		return nil, err
	}
	return api.CancelRequest200JSONResponse(*r), nil
}

func (s *Server) FailRequest(ctx context.Context, req api.FailRequestRequestObject) (api.FailRequestResponseObject, error) {
	actor, reason := actorOf(req.Body)
	r, err := s.requests.Fail(ctx, req.Id, actor, reason)
	if err != nil {
		return nil, err
	}
	return api.FailRequest200JSONResponse(*r), nil
}

func (s *Server) CompleteRequest(ctx context.Context, req api.CompleteRequestRequestObject) (api.CompleteRequestResponseObject, error) {
	actor, _ := actorOf(req.Body)
	r, err := s.requests.Complete(ctx, req.Id, actor)
	if err != nil {
		return nil, err
	}
	return api.CompleteRequest200JSONResponse(*r), nil
}

func (s *Server) AcceptRequest(ctx context.Context, req api.AcceptRequestRequestObject) (api.AcceptRequestResponseObject, error) {
	b := req.Body
	r, err := s.requests.Accept(ctx, req.Id, b.HospitalId, b.UnitsCommitted, b.EtaMinutes)
	if err != nil {
		return nil, err
	}
	return api.AcceptRequest200JSONResponse(*r), nil
}

func (s *Server) DeclineRequest(ctx context.Context, req api.DeclineRequestRequestObject) (api.DeclineRequestResponseObject, error) {
	r, err := s.requests.Decline(ctx, req.Id, req.Body.HospitalId, deref(req.Body.Reason))
	if err != nil {
		return nil, err
	}
	return api.DeclineRequest200JSONResponse(*r), nil
}

func (s *Server) DispatchRequest(ctx context.Context, req api.DispatchRequestRequestObject) (api.DispatchRequestResponseObject, error) {
	t, err := s.requests.Dispatch(ctx, req.Id, domain.TransportInfo(deref(req.Body)))
	if err != nil {
		return nil, err
	}
	return api.DispatchRequest201JSONResponse(*t), nil
}

func (s *Server) ReturnUnits(ctx context.Context, req api.ReturnUnitsRequestObject) (api.ReturnUnitsResponseObject, error) {
	r, err := s.requests.ReturnUnits(ctx, req.Id, req.Body.Units)
	if err != nil {
		return nil, err
	}
	return api.ReturnUnits200JSONResponse(*r), nil
}

func (s *Server) EscalateRequest(ctx context.Context, req api.EscalateRequestRequestObject) (api.EscalateRequestResponseObject, error) {
	r, err := s.requests.ManualEscalate(ctx, req.Id, req.Body.Actor, deref(req.Body.TargetLevel))
	if err != nil {
		return nil, err
	}
	return api.EscalateRequest200JSONResponse(*r), nil
}

func (s *Server) GetEscalationStats(ctx context.Context, req api.GetEscalationStatsRequestObject) (api.GetEscalationStatsResponseObject, error) {
	st, err := s.requests.EscalationStats(ctx, deref(req.Params.From), deref(req.Params.To))
	if err != nil {
		return nil, err
	}
	return api.GetEscalationStats200JSONResponse(st), nil
}
