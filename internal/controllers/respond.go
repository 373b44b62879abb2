package controllers

import (
	"errors"
	"net/http"

	"fitlog-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError is the single error responder for the API. All errors
// render as a plain-text body: validation failures as 400 with the field
// message, everything else as a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.String(http.StatusBadRequest, verr.Message)
		return
	}

	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).WithError(err).Error("request failed")

	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// NotFound handles any unmatched route.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "not found")
}
