package httpapi

import (
	"net/http"

	"github.com/riskibarqy/team-roster/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	view, err := h.playerService.ListPlayers(ctx, r.PathValue("group"), r.URL.Query().Get("team"))
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRosterDTO(view))
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	added, err := h.playerService.AddPlayer(ctx, usecase.AddPlayerInput{
		Group: r.PathValue("group"),
		Name:  req.Name,
		Team:  req.Team,
	})
	if err != nil {
		h.fail(ctx, w, "add player failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toPlayerDTO(added))
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	err := h.playerService.RemovePlayer(ctx, r.PathValue("group"), r.PathValue("player"))
	if err != nil {
		h.fail(ctx, w, "remove player failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
