package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
)

// Envelope is the uniform wire contract of the API. Every response, success
// or failure, is one of these.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta,omitempty"`
}

// JSON sends a success envelope with optional metadata.
func JSON(c *gin.Context, status int, message string, data interface{}, meta ...interface{}) {
	envelope := Envelope{Status: true, Message: message, Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, message string, data interface{}, meta ...interface{}) {
	JSON(c, http.StatusOK, message, data, meta...)
}

// Created responds with HTTP 201.
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data)
}

// Error sends a failure envelope converting the error to the common structure.
// Wrapped store errors surface their underlying text in the message, which is
// what the desktop client displays.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, Envelope{Status: false, Message: appErr.Error(), Data: nil})
}
