package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIError 所有 4xx/5xx 的统一响应体
type APIError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status" example:"404"`
	Error     string    `json:"error" example:"Not Found"`
	Message   string    `json:"message" example:"Hero with id 999 not found"`
	Path      string    `json:"path" example:"/api/v1/heroes/999"`
}

func New(c *gin.Context, status int, msg string) APIError {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return APIError{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   msg,
		Path:      c.Request.URL.Path,
	}
}

// Abort 中断后续 handler 并写错误体（中间件用）
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, New(c, status, msg))
}

// Fail 按错误种类翻译状态码；非预期错误不向外暴露细节
func Fail(c *gin.Context, err error) {
	status := StatusOf(err)
	_ = c.Error(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = ""
	}
	Abort(c, status, msg)
}
