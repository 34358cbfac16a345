package handlers

import (
	jwt "PlayTube.com/pkg"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

// SendResponse pack response 错误码直接用作HTTP状态码
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	if Err.ErrCode == errno.SuccessCode {
		c.JSON(int(Err.ErrCode), Response{
			StatusCode: Err.ErrCode,
			Message:    Err.ErrMsg,
			Data:       data,
			Success:    true,
		})
		return
	}
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Message:    Err.ErrMsg,
		Success:    false,
		Errors:     []string{Err.ErrMsg},
	})
}

// getUserId 认证中间件校验通过后放进上下文的用户id 匿名请求返回0
func getUserId(c *app.RequestContext) int64 {
	v, ok := c.Get(jwt.IdentityKey)
	if !ok {
		return 0
	}
	return utils.Transfer(v)
}

type LoginParam struct {
	UserName string `json:"user_name" form:"user_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UpdateAccountParam struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
}

type ChangePasswordParam struct {
	OldPassword     string `json:"old_password" form:"old_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type HistoryParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
