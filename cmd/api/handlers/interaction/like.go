package handlers

import (
	"context"

	"PlayTube.com/cmd/interaction/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// ToggleVideoLike 点赞/取消点赞视频 返回本次之后的状态
func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	liked, err := service.NewLikeService(ctx).ToggleVideoLike(videoId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"liked": liked})
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid comment id"), nil)
		return
	}
	liked, err := service.NewLikeService(ctx).ToggleCommentLike(commentId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"liked": liked})
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid tweet id"), nil)
		return
	}
	liked, err := service.NewLikeService(ctx).ToggleTweetLike(tweetId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"liked": liked})
}

// LikedVideos 当前用户点赞过的视频
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	var req LikedVideosParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videos, total, err := service.NewLikeService(ctx).GetLikedVideos(getUserId(c), req.PageNum, req.PageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"items": videos, "total": total})
}
