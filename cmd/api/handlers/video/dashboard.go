package handlers

import (
	"context"

	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// DashboardStats 把当前用户当作频道主看总量数据
func DashboardStats(ctx context.Context, c *app.RequestContext) {
	stats, err := service.NewDashboardService(ctx).GetStats(getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, stats)
}

// DashboardVideos 频道主自己的全部视频 未发布的也返回
func DashboardVideos(ctx context.Context, c *app.RequestContext) {
	var req DashboardVideosParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videos, total, err := service.NewDashboardService(ctx).GetChannelVideos(getUserId(c), req.PageNum, req.PageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, utils.H{"items": videos, "total": total})
}
