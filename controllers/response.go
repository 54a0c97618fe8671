package controllers

import (
	"net/http"

	"jasit-store/models"
	"jasit-store/utils"

	"github.com/gin-gonic/gin"
)

func ok(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// fail answers with the error envelope. Errors without a user message are
// reported with fallback and recorded on the gin context for the request log.
func fail(c *gin.Context, err error, fallback string) {
	status := utils.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: utils.UserMessage(err, fallback),
	})
}

func failRedirect(c *gin.Context, err error, fallback, redirect string) {
	status := utils.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, models.ErrorResponse{
		Success:  false,
		Message:  utils.UserMessage(err, fallback),
		Redirect: redirect,
	})
}

func badRequest(c *gin.Context, err error) {
	resp := models.ErrorResponse{
		Success: false,
		Message: "Data yang dikirim tidak valid",
	}
	if fields, ok := utils.ValidationMessages(err); ok {
		resp.Fields = fields
	} else {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
