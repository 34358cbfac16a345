package handlers

import (
	"context"

	"PlayTube.com/cmd/user/service"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// CurrentUser 当前登录用户
func CurrentUser(ctx context.Context, c *app.RequestContext) {
	user, err := service.NewGetUserInfoService(ctx).GetUserInfo(getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}

// UpdateAccount 改全名/邮箱 至少传一个
func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	var req UpdateAccountParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	user, err := service.NewUpdateUserService(ctx).UpdateAccount(getUserId(c), &service.UpdateAccountParam{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}

// ChangePassword 旧密码验证通过后换新密码
func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var req ChangePasswordParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	err := service.NewChangePasswordService(ctx).ChangePassword(getUserId(c), &service.ChangePasswordParam{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}
