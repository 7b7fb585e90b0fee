package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
	"github.com/riskibarqy/team-roster/internal/usecase"
)

const maxRequestBodyBytes = 1 << 16

type Handler struct {
	groupService  *usecase.GroupService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	groupService *usecase.GroupService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		groupService:  groupService,
		playerService: playerService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// RouteNotFound answers unmatched paths with the JSON error envelope.
func (h *Handler) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RouteNotFound")
	defer span.End()

	writeError(ctx, w, errors.WithHint(
		errors.Wrapf(domain.ErrNotFound, "route %s %s", r.Method, r.URL.Path),
		"Page not found.",
	))
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return errors.WithHint(
			errors.Wrapf(domain.ErrInvalidInput, "decode request body: %v", err),
			"The request body is not valid JSON.",
		)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.WithHint(
			errors.Wrapf(domain.ErrInvalidInput, "validation failed: %v", err),
			"The request is missing required fields.",
		)
	}

	return nil
}

// fail logs failures that are not the caller's fault and writes the error
// envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if _, typed := domain.UserMessage(err); !typed {
		h.logger.ErrorContext(ctx, msg, "error", err)
	}
	writeError(ctx, w, err)
}
