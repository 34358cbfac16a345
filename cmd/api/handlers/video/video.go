package handlers

import (
	"context"
	"io"

	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

func videoIdParam(c *app.RequestContext) (int64, error) {
	return utils.ConvertStringToInt64(c.Param("video_id"))
}

// GetVideo 视频详情 匿名可看 每次成功获取计一次播放
func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	info, err := service.NewGetVideoService(ctx).GetVideo(videoId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, info)
}

// UpdateVideo 改标题/简介 multipart里可以带新缩略图
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	req := &service.UpdateVideoParam{
		VideoId:     videoId,
		UserId:      getUserId(c),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
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

	video, err := service.NewUpdateVideoService(ctx).UpdateVideo(req)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}

// DeleteVideo 删除视频及其媒体对象/索引/评论/点赞
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	if err := service.NewDeleteVideoService(ctx).DeleteVideo(videoId, getUserId(c)); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}

// TogglePublish 发布状态取反
func TogglePublish(ctx context.Context, c *app.RequestContext) {
	videoId, err := videoIdParam(c)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	video, err := service.NewTogglePublishService(ctx).TogglePublish(videoId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"is_published": video.IsPublished})
}
