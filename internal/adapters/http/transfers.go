package httpadapter

import (
	"context"

	api "bloodlink/internal/api"
	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

func (s *Server) GetTransfer(ctx context.Context, req api.GetTransferRequestObject) (api.GetTransferResponseObject, error) {
	t, err := s.transfers.GetTransfer(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetTransfer200JSONResponse(*t), nil
}

func (s *Server) UpdateTransferLocation(ctx context.Context, req api.UpdateTransferLocationRequestObject) (api.UpdateTransferLocationResponseObject, error) {
	b := req.Body
	loc := domain.Location{Latitude: b.Latitude, Longitude: b.Longitude}
	t, err := s.transfers.UpdateTransferLocation(ctx, req.Id, loc, deref(b.At))
	if err != nil {
		return nil, err
	}
	return api.UpdateTransferLocation200JSONResponse(*t), nil
}

func (s *Server) LogTemperature(ctx context.Context, req api.LogTemperatureRequestObject) (api.LogTemperatureResponseObject, error) {
	if req.Body.Celsius == nil {
		return nil, domain.Validationf("celsius is required")
	}
	t, err := s.transfers.LogTemperature(ctx, req.Id, *req.Body.Celsius, deref(req.Body.At))
	if err != nil {
		return nil, err
	}
	return api.LogTemperature200JSONResponse(*t), nil
}

func (s *Server) RecordDelivery(ctx context.Context, req api.RecordDeliveryRequestObject) (api.RecordDeliveryResponseObject, error) {
	b := req.Body
	r, err := s.transfers.RecordDelivery(ctx, req.Id, b.UnitsReceived, domain.DeliveryChecklist(b.Checklist))
	if err != nil {
		return nil, err
	}
	return api.RecordDelivery200JSONResponse(*r), nil
}

func (s *Server) GetHospitalTrust(ctx context.Context, req api.GetHospitalTrustRequestObject) (api.GetHospitalTrustResponseObject, error) {
	l, err := s.trust.Ledger(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetHospitalTrust200JSONResponse(l), nil
}

func (s *Server) GetHospitalNotifications(ctx context.Context, req api.GetHospitalNotificationsRequestObject) (api.GetHospitalNotificationsResponseObject, error) {
	if s.inbox == nil {
		return api.GetHospitalNotifications501JSONResponse{Error: "notification inbox not configured"}, nil
	}
	limit := 20
	if req.Params.Limit != nil {
		limit = *req.Params.Limit
	}
	notes, err := s.inbox.Recent(ctx, req.Id, limit)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []ports.Notification{}
	}
	return api.GetHospitalNotifications200JSONResponse(notes), nil
}
