package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "bloodlink/internal/api"
	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// Deps are the services behind the API. History and Inbox are optional.
type Deps struct {
	Requests  ports.Requests
	Transfers ports.Transfers
	Trust     ports.Trust
	History   ports.AuditHistory
	Inbox     ports.Inbox
}

type Server struct {
	requests  ports.Requests
	transfers ports.Transfers
	trust     ports.Trust
	history   ports.AuditHistory
	inbox     ports.Inbox
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(d Deps) *Server {
	return &Server{requests: d.Requests, transfers: d.Transfers, trust: d.Trust, history: d.History, inbox: d.Inbox}
}

// Routes returns a chi.Router with the generated API mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, domain.Validationf("invalid request body: %v", err))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, err)
		},
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, domain.Validationf("%v", err))
		},
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse maps domain error kinds onto HTTP statuses.
func errorResponse(err error) (int, api.Error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		log.Printf("http: internal error: %v", err)
		return http.StatusInternalServerError, api.Error{Error: "internal error"}
	}
	kind := string(derr.Kind)
	body := api.Error{Error: derr.Error(), Kind: &kind}
	status := http.StatusInternalServerError
	switch derr.Kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindInvalidTransition:
		status = http.StatusConflict
		from, to := string(derr.From), string(derr.To)
		body.From, body.To = &from, &to
	case domain.KindInsufficientInventory:
		status = http.StatusConflict
		available, required := derr.Available, derr.Required
		body.Available, body.Required = &available, &required
	case domain.KindConcurrentModification:
		status = http.StatusConflict
	}
	return status, body
}

func writeError(w http.ResponseWriter, err error) {
	status, body := errorResponse(err)
	writeJSON(w, status, body)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
