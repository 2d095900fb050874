package response

import (
	"context"
	"errors"
	"net/http"

	"superheroes/internal/domain"
)

// 错误种类 -> HTTP 状态码
var kindStatus = map[domain.Kind]int{
	domain.KindInvalidArgument: http.StatusBadRequest,
	domain.KindNotFound:        http.StatusNotFound,
	domain.KindAlreadyExists:   http.StatusConflict,
	domain.KindUnexpected:      http.StatusInternalServerError,
}

func StatusOf(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	if st, ok := kindStatus[domain.KindOf(err)]; ok {
		return st
	}
	return http.StatusInternalServerError
}
