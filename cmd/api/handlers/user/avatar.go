package handlers

import (
	"context"

	"PlayTube.com/cmd/user/service"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// UpdateAvatar 换头像 旧图在新图落库后尽力删除
func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("avatar file is required"), nil)
		return
	}
	if fh.Size > constants.MaxImageSize {
		SendResponse(c, errno.ParamErr.WithMessage("avatar file is too large"), nil)
		return
	}
	data, contentType, err := readFormFile(fh)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	user, err := service.NewAvatarUploadService(ctx).UpdateAvatar(getUserId(c), data, contentType)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}

// UpdateCover 换频道封面
func UpdateCover(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("cover_image")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("cover image file is required"), nil)
		return
	}
	if fh.Size > constants.MaxImageSize {
		SendResponse(c, errno.ParamErr.WithMessage("cover image is too large"), nil)
		return
	}
	data, contentType, err := readFormFile(fh)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	user, err := service.NewAvatarUploadService(ctx).UpdateCover(getUserId(c), data, contentType)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}
