package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode      = 200
	RequestErrCode   = 400
	TokenInvalidCode = 401
	ForbiddenErrCode = 403
	NotFoundErrCode  = 404
	ConflictErrCode  = 409
	LimitErrCode     = 429
	ServiceErrCode   = 500
	UpstreamErrCode  = 502
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success          = NewErrNo(SuccessCode, "Success")
	ServiceErr       = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	RequestErr       = NewErrNo(RequestErrCode, "Bad request")
	TokenInvailedErr = NewErrNo(TokenInvalidCode, "Token is invalid")
	ForbiddenErr     = NewErrNo(ForbiddenErrCode, "You are not allowed to do this")
	NotFoundErr      = NewErrNo(NotFoundErrCode, "Record not found")
	ConflictErr      = NewErrNo(ConflictErrCode, "Record already exists")
	LimitErr         = NewErrNo(LimitErrCode, "Too many requests")
	UpstreamErr      = NewErrNo(UpstreamErrCode, "Upstream service failed")
)

// ConvertErr normalizes any error into an ErrNo for the response envelope.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}
