package handlers

import (
	"context"
	"time"

	"PlayTube.com/cmd/user/service"
	"PlayTube.com/config"
	jwt "PlayTube.com/pkg"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol"
)

func setTokenCookies(c *app.RequestContext, accessToken, refreshToken string) {
	accessMaxAge := int(time.Duration(config.ConfigInfo.Jwt.AccessExpireMin) * time.Minute / time.Second)
	refreshMaxAge := int(time.Duration(config.ConfigInfo.Jwt.RefreshExpireHour) * time.Hour / time.Second)
	c.SetCookie("accessToken", accessToken, accessMaxAge, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.SetCookie("refreshToken", refreshToken, refreshMaxAge, "/", "", protocol.CookieSameSiteLaxMode, false, true)
}

// Login 用户名或邮箱加密码 成功后种双token cookie 响应体里也带一份
func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if (req.UserName == "" && req.Email == "") || req.Password == "" {
		SendResponse(c, errno.ParamErr.WithMessage("username or email is required"), nil)
		return
	}

	svc := service.NewLoginUserService(ctx)
	user, err := svc.LoginUser(&service.LoginParam{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		SendResponse(c, errno.AuthorizationFailedErr.WithMessage("invalid user credentials"), nil)
		return
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(user.UserId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := svc.RecordRefreshToken(user.UserId, refreshToken); err != nil {
		SendResponse(c, err, nil)
		return
	}

	setTokenCookies(c, accessToken, refreshToken)
	SendResponse(c, nil, utils.H{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
