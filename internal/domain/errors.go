package domain

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidArgument
	KindNotFound
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	default:
		return "unexpected"
	}
}

// Error 业务错误：Kind 决定 HTTP 状态码，Msg 直接返回给调用方
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// ErrDuplicateKey 存储层唯一约束冲突
var ErrDuplicateKey = errors.New("duplicate key")

func InvalidArgument(msg string) error { return &Error{Kind: KindInvalidArgument, Msg: msg} }

func HeroNotFound(id uint64) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("Hero with id %d not found", id)}
}

func HeroAlreadyExists(name string, cause error) error {
	return &Error{Kind: KindAlreadyExists, Msg: fmt.Sprintf("Hero with name '%s' already exists", name), Err: cause}
}

// KindOf 非 *Error 一律视为 Unexpected
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}

func IsNotFound(err error) bool      { return err != nil && KindOf(err) == KindNotFound }
func IsAlreadyExists(err error) bool { return err != nil && KindOf(err) == KindAlreadyExists }
func IsInvalidArgument(err error) bool {
	return err != nil && KindOf(err) == KindInvalidArgument
}
