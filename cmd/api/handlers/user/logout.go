package handlers

import (
	"context"

	"PlayTube.com/cmd/user/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
)

// Logout 清掉白名单和数据库里的refresh-token 再把两个cookie置空
func Logout(ctx context.Context, c *app.RequestContext) {
	userId := getUserId(c)
	if err := service.NewLogoutService(ctx).Logout(userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	c.SetCookie("accessToken", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.SetCookie("refreshToken", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	SendResponse(c, nil, nil)
}
