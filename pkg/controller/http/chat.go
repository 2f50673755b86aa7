package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/usecase"
	"github.com/heirs-lab/prince/pkg/utils/errutil"
	"github.com/heirs-lab/prince/pkg/utils/safe"
)

type chatRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type resetRequest struct {
	Phone string `json:"phone"`
}

// chatHandler processes one conversation turn for the phone identity in
// the request body.
func chatHandler(chat *usecase.ChatUseCase, hub *sessionHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode chat request"), http.StatusBadRequest)
			return
		}
		if req.Phone == "" {
			errutil.HandleHTTP(ctx, w, goerr.New("phone is required"), http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			errutil.HandleHTTP(ctx, w, goerr.New("message is required"), http.StatusBadRequest)
			return
		}

		entry := hub.acquire(req.Phone)
		defer entry.release()

		reply, err := chat.HandleMessage(ctx, entry.session, req.Message)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		body, err := json.Marshal(chatResponse{Reply: reply})
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to encode chat response"), http.StatusInternalServerError)
			return
		}
		safe.Write(ctx, w, body)
	}
}

// resetHandler clears the session for the phone identity, returning it
// to the consent gate.
func resetHandler(hub *sessionHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req resetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode reset request"), http.StatusBadRequest)
			return
		}
		if req.Phone == "" {
			errutil.HandleHTTP(ctx, w, goerr.New("phone is required"), http.StatusBadRequest)
			return
		}

		hub.reset(req.Phone)
		w.WriteHeader(http.StatusNoContent)
	}
}
