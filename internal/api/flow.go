package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
)

// FlowHandler exposes the server-driven multi-step form. Clients hold an
// opaque session token and post actions against it.
type FlowHandler struct {
	flow *inquiry.Flow
	errs *apperrors.Handler
}

func NewFlowHandler(flow *inquiry.Flow, errs *apperrors.Handler) *FlowHandler {
	return &FlowHandler{flow: flow, errs: errs}
}

type startFlowRequest struct {
	SourcePage string `json:"sourcePage"`
}

// Start handles POST /api/inquiry/flow/start.
func (h *FlowHandler) Start(c *gin.Context) {
	var req startFlowRequest
	// An empty body is fine; sourcePage is optional.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.respondError(c, apperrors.NewInvalidPayloadError(err))
			return
		}
	}

	state, err := h.flow.Start(c.Request.Context(), req.SourcePage)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Apply handles POST /api/inquiry/flow/:token. Field edits and the
// optional action are applied in one request; rejected actions still
// return the (persisted) current state alongside the error status.
func (h *FlowHandler) Apply(c *gin.Context) {
	var action inquiry.Action
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&action); err != nil {
			h.respondError(c, apperrors.NewInvalidPayloadError(err))
			return
		}
	}

	state, err := h.flow.Apply(c.Request.Context(), c.Param("token"), action)
	if err != nil {
		status, body := h.errs.Respond(c.Request.URL.Path, err)
		if state != nil {
			c.JSON(status, gin.H{"error": body.Error, "state": state})
			return
		}
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *FlowHandler) respondError(c *gin.Context, err error) {
	status, body := h.errs.Respond(c.Request.URL.Path, err)
	c.JSON(status, body)
}
