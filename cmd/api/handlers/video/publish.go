package handlers

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

// Publish 发布视频 multipart里带视频文件和可选缩略图
// 视频先落到临时目录 探测时长并上传后删掉
func Publish(ctx context.Context, c *app.RequestContext) {
	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}
	if videoFile.Size > constants.MaxVideoSize {
		SendResponse(c, errno.ParamErr.WithMessage("video file is too large"), nil)
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+".mp4")
	if err := c.SaveUploadedFile(videoFile, tmpPath); err != nil {
		SendResponse(c, err, nil)
		return
	}
	defer os.Remove(tmpPath)

	req := &service.PublishVideoParam{
		UserId:      getUserId(c),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		VideoPath:   tmpPath,
	}
	if fh, err := c.FormFile("thumbnail"); err == nil {
		if fh.Size > constants.MaxImageSize {
			SendResponse(c, errno.ParamErr.WithMessage("thumbnail is too large"), nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		req.Thumbnail, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		req.ThumbnailType = fh.Header.Get("Content-Type")
	}

	video, err := service.NewPublishVideoService(ctx).PublishVideo(req)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}
