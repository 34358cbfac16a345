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

func getUserId(c *app.RequestContext) int64 {
	v, ok := c.Get(jwt.IdentityKey)
	if !ok {
		return 0
	}
	return utils.Transfer(v)
}

type TweetParam struct {
	Content string `json:"content" form:"content"`
}

type UserTweetsParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
