package common

import (
	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/pkg/errno"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int64    `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// SendResponse packs the envelope. The error codes double as HTTP status
// codes, so the envelope's statusCode and the transport status always agree.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	e := errno.ConvertErr(err)
	if e.ErrCode != errno.SuccessCode {
		c.JSON(int(e.ErrCode), ErrorResponse{
			StatusCode: e.ErrCode,
			Message:    e.ErrMsg,
			Success:    false,
			Errors:     []string{},
		})
		return
	}
	c.JSON(int(e.ErrCode), Response{
		StatusCode: e.ErrCode,
		Data:       data,
		Message:    e.ErrMsg,
		Success:    true,
	})
}

// SendMessage is SendResponse for success responses that carry a custom
// message instead of a payload.
func SendMessage(c *app.RequestContext, message string) {
	c.JSON(errno.SuccessCode, Response{
		StatusCode: errno.SuccessCode,
		Message:    message,
		Success:    true,
	})
}
