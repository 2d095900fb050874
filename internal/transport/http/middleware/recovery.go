package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "superheroes/internal/transport/http/response"
)

// PanicJSON 作为 ginzap 的 recovery 回调：堆栈由 ginzap 记录，对外只给 500 错误体
func PanicJSON(c *gin.Context, _ any) {
	resp.Abort(c, http.StatusInternalServerError, "")
}
