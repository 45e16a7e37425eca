package handlers

import (
	"errors"
	"net/http"
	"strings"

	"sportello/i18n"
	"sportello/models"
	"sportello/services/booking"
	"sportello/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the form/booking submission endpoints.
type BookingHandler struct {
	service booking.SubmissionService
	logger  *zap.Logger
}

func NewBookingHandler(service booking.SubmissionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger,
	}
}

// SubmitHandler accepts a JSON or multipart form submission, forwards it to
// the submission service and answers with either a checkout redirect URL or
// an acknowledgement carrying the booking reference.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	form := c.Param("form")

	var sub models.Submission
	var att *booking.Attachment

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&sub); err != nil {
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "common.invalid_input"), err.Error())
			return
		}
		if fh, err := c.FormFile("attachment"); err == nil {
			f, err := fh.Open()
			if err != nil {
				h.logger.Warn("could not open uploaded attachment", zap.String("file", fh.Filename), zap.Error(err))
			} else {
				defer f.Close()
				att = &booking.Attachment{Filename: fh.Filename, Content: f}
			}
		}
	} else {
		if err := c.ShouldBindJSON(&sub); err != nil {
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "common.invalid_input"), err.Error())
			return
		}
	}

	if sub.Locale == "" {
		sub.Locale = i18n.GetLangFromContext(c)
	}

	result, err := h.service.Submit(c.Request.Context(), form, sub, att)
	if err != nil {
		var mf *booking.MissingFieldError
		switch {
		case errors.Is(err, booking.ErrUnknownForm):
			utils.JSONError(c, http.StatusNotFound, i18n.Message(c, "common.invalid_input"), form)
		case errors.As(err, &mf):
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "booking.missing_field", map[string]any{"Field": mf.Field}), "")
		default:
			h.logger.Error("form submission failed", zap.String("form", form), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, i18n.Message(c, "common.internal_error"), "")
		}
		return
	}

	result.Message = i18n.Message(c, "booking.received")
	c.JSON(http.StatusOK, result)
}
