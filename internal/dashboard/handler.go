package dashboard

import (
	"net/http"

	"github.com/frahmantamala/tracko/internal/auth"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"github.com/frahmantamala/tracko/internal/transport"
	"github.com/frahmantamala/tracko/pkg/logger"
)

type ServiceAPI interface {
	Stats(actor *coreuser.Actor, period Period) (*Stats, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	period := Period(r.URL.Query().Get("period"))
	if period == "" {
		period = PeriodToday
	}

	stats, err := h.Service.Stats(actor, period)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "dashboard stats fetched", stats)
}
