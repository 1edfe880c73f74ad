package subscription

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamepulse/internal/domain/entity"
	hhttp "gamepulse/internal/handler/http"
	"gamepulse/internal/handler/http/respond"
	subUC "gamepulse/internal/usecase/subscription"
)

// CreateRequest is the JSON body for a newsletter sign-up.
// AcceptedPolicy defaults to true when omitted; an explicit false is
// rejected.
type CreateRequest struct {
	Email          string `json:"email"`
	AcceptedPolicy *bool  `json:"acceptedPolicy"`
}

type CreateHandler struct{ Svc subUC.Service }

// ServeHTTP registers an email for the newsletter. Signing up twice
// with the same email returns the existing record; both the fresh and
// the repeated sign-up answer 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	existing, err := h.Svc.GetByEmail(r.Context(), req.Email)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	sub, err := h.Svc.Subscribe(r.Context(), subUC.SubscribeInput{
		Email:          req.Email,
		AcceptedPolicy: req.AcceptedPolicy,
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	if existing == nil {
		hhttp.RecordSubscriptionCreated()
	}
	respond.JSON(w, http.StatusCreated, toDTO(sub))
}
