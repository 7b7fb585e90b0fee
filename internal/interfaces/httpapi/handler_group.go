package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-roster/internal/usecase"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	groups, err := h.groupService.ListGroups(ctx)
	if err != nil {
		h.fail(ctx, w, "list groups failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGroupDTOs(groups))
}

func (h *Handler) ListGroupSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupSummaries")
	defer span.End()

	summaries, err := h.groupService.ListSummaries(ctx)
	if err != nil {
		h.fail(ctx, w, "list group summaries failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGroupSummaryDTOs(summaries))
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	var req createGroupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.groupService.CreateGroup(ctx, req.Name)
	if err != nil {
		h.fail(ctx, w, "create group failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupDTO{Name: created.Name})
}

// RemoveGroup requires ?confirm=true; without it nothing is removed.
func (h *Handler) RemoveGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveGroup")
	defer span.End()

	confirmed, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("confirm")))
	err := h.groupService.RemoveGroup(ctx, usecase.RemoveGroupInput{
		Name:      r.PathValue("group"),
		Confirmed: confirmed,
	})
	if err != nil {
		h.fail(ctx, w, "remove group failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
