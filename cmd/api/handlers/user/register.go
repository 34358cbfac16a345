package handlers

import (
	"context"
	"io"
	"mime/multipart"

	"PlayTube.com/cmd/user/service"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func readFormFile(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}

// Register 注册 multipart表单 avatar必传 cover_image可选
func Register(ctx context.Context, c *app.RequestContext) {
	req := &service.RegisterParam{
		UserName: c.PostForm("user_name"),
		FullName: c.PostForm("full_name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("avatar file is required"), nil)
		return
	}
	if avatarFile.Size > constants.MaxImageSize {
		SendResponse(c, errno.ParamErr.WithMessage("avatar file is too large"), nil)
		return
	}
	req.Avatar, req.AvatarType, err = readFormFile(avatarFile)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}

	if coverFile, err := c.FormFile("cover_image"); err == nil {
		if coverFile.Size > constants.MaxImageSize {
			SendResponse(c, errno.ParamErr.WithMessage("cover image is too large"), nil)
			return
		}
		req.Cover, req.CoverType, err = readFormFile(coverFile)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(req)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}
