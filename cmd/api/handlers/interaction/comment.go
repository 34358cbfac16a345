package handlers

import (
	"context"

	"PlayTube.com/cmd/interaction/service"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// CreateComment 给视频加评论
func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	var req CreateCommentParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if len(req.Content) > constants.MaxCommentLength {
		SendResponse(c, errno.ParamErr.WithMessage("comment is too long"), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).AddComment(videoId, getUserId(c), req.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, comment)
}

// ListComments 视频评论 分页 新的排前面
func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid video id"), nil)
		return
	}
	var req ListCommentParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	comments, total, err := service.NewCommentService(ctx).GetVideoComments(videoId, getUserId(c), req.PageNum, req.PageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"items": comments, "total": total})
}

// UpdateComment 只有作者能改
func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid comment id"), nil)
		return
	}
	var req CreateCommentParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(commentId, getUserId(c), req.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, comment)
}

// DeleteComment 只有作者能删
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid comment id"), nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(commentId, getUserId(c)); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}
