package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
)

const maxInquiryBody = 64 << 10 // 64 KiB

// InquiryHandler implements the public lead submission endpoint.
type InquiryHandler struct {
	service *inquiry.Service
	errs    *apperrors.Handler
}

func NewInquiryHandler(service *inquiry.Service, errs *apperrors.Handler) *InquiryHandler {
	return &InquiryHandler{service: service, errs: errs}
}

// Submit handles POST /api/inquiry. Success returns {"success":true};
// every failure returns a generic {"error":...} body with the detail
// kept in server logs.
func (h *InquiryHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxInquiryBody))
	if err != nil {
		h.respondError(c, apperrors.NewInvalidPayloadError(err))
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		h.respondError(c, apperrors.NewInvalidPayloadError(err))
		return
	}

	if err := inquiry.ValidatePayload(raw); err != nil {
		h.respondError(c, err)
		return
	}

	var draft inquiry.Draft
	if err := json.Unmarshal(body, &draft); err != nil {
		h.respondError(c, apperrors.NewInvalidPayloadError(err))
		return
	}

	if err := h.service.Submit(c.Request.Context(), draft); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *InquiryHandler) respondError(c *gin.Context, err error) {
	status, body := h.errs.Respond(c.Request.URL.Path, err)
	c.JSON(status, body)
}
