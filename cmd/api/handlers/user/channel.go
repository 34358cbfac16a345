package handlers

import (
	"context"

	"PlayTube.com/cmd/user/service"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChannelProfile 频道主页 可匿名访问 订阅状态相对当前viewer计算
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	if username == "" {
		SendResponse(c, errno.ParamErr.WithMessage("username is required"), nil)
		return
	}
	profile, err := service.NewChannelProfileService(ctx).GetChannelProfile(username, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, profile)
}
