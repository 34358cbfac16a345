package errno

import (
	"errors"
	"fmt"
)

// 错误码直接复用HTTP状态码 这样handler在打包响应时不需要再做一次映射
const (
	SuccessCode                = 200
	ParamErrCode               = 400
	AuthorizationFailedErrCode = 401
	ForbiddenErrCode           = 403
	RecordNotFoundErrCode      = 404
	DuplicateErrCode           = 409
	ServiceErrCode             = 500
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
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
	TokenInvailedErr       = NewErrNo(AuthorizationFailedErrCode, "Token is invalid")
	ForbiddenErr           = NewErrNo(ForbiddenErrCode, "Only the owner is allowed to do this")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundErrCode, "Record not found")
	DuplicateErr           = NewErrNo(DuplicateErrCode, "Record already exists")
)

// ConvertErr 把任意error折叠成ErrNo 未知错误一律按ServiceErr处理
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
