package handlers

import (
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/metrics"
	"users-api/internal/models"
	"users-api/internal/repositories"
	"users-api/internal/telemetry"
)

const kubilayText = "kubilay kaptanoglu"

type UserHandler struct {
	users     repositories.UserRepository
	audit     *telemetry.AuditEmitter
	log       *zap.Logger
	includeID bool
}

func NewUserHandler(users repositories.UserRepository, audit *telemetry.AuditEmitter, log *zap.Logger, includeID bool) *UserHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserHandler{
		users:     users,
		audit:     audit,
		log:       log,
		includeID: includeID,
	}
}

// userResponse is the wire shape of a user. ID is only set when the handler
// is configured to expose it.
type userResponse struct {
	ID       *int64 `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *UserHandler) toResponse(u models.User) userResponse {
	resp := userResponse{Username: u.Username, Email: u.Email}
	if h.includeID {
		id := u.ID
		resp.ID = &id
	}
	return resp
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := requestIDFromHeader(c)

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.log.Error("failed to list users", zap.String("request_id", requestID), zap.Error(err))
		h.audit.EmitAudit(ctx, telemetry.LevelError, "failed to list users", requestID)
		metrics.IncUsersList(metrics.StatusFailed)
		_ = c.Error(err)
		c.AbortWithStatus(nethttp.StatusInternalServerError)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, h.toResponse(u))
	}

	h.audit.EmitAudit(ctx, telemetry.LevelInfo, "Listed "+strconv.Itoa(len(resp))+" users", requestID)
	metrics.IncUsersList(metrics.StatusSuccess)
	c.JSON(nethttp.StatusOK, resp)
}

func (h *UserHandler) Kubilay(c *gin.Context) {
	c.String(nethttp.StatusOK, kubilayText)
}
