package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every API reply is wrapped in.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *AppError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta accompanies list replies.
type Meta struct {
	Total int `json:"total"`
}

// errorStatus is the HTTP status each error code is sent with.
var errorStatus = map[string]int{
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeRejected:     http.StatusConflict,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeInternal:     http.StatusInternalServerError,
}

func StatusFor(code string) int {
	if status, ok := errorStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func send(c *gin.Context, status int, data interface{}, meta *Meta) {
	c.JSON(status, Response{Success: true, Data: data, Meta: meta})
}

func SendSuccess(c *gin.Context, data interface{}) {
	send(c, http.StatusOK, data, nil)
}

func SendCreated(c *gin.Context, data interface{}) {
	send(c, http.StatusCreated, data, nil)
}

// SendList replies with a collection and its size.
func SendList(c *gin.Context, items interface{}, total int) {
	send(c, http.StatusOK, items, &Meta{Total: total})
}

// SendError aborts the request with err at the status its code maps to.
func SendError(c *gin.Context, err *AppError) {
	c.AbortWithStatusJSON(StatusFor(err.Code), Response{Success: false, Error: err})
}

func SendValidationError(c *gin.Context, message string, details string) {
	SendError(c, NewAppError(ErrCodeValidation, message, details))
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, NewAppError(ErrCodeNotFound, message))
}

func SendUnauthorized(c *gin.Context, message string) {
	SendError(c, NewAppError(ErrCodeUnauthorized, message))
}

func SendForbidden(c *gin.Context, message string) {
	SendError(c, NewAppError(ErrCodeForbidden, message))
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, NewAppError(ErrCodeInternal, message))
}

// SendRejected reports an operation that was refused and left state unchanged.
func SendRejected(c *gin.Context, reason string) {
	SendError(c, NewAppError(ErrCodeRejected, "Operation rejected", reason))
}

func SendTooManyRequests(c *gin.Context) {
	SendError(c, NewAppError(ErrCodeRateLimited, "Too many requests"))
}
