package handlers

import (
	"context"

	"PlayTube.com/cmd/user/service"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// WatchHistory 观看历史 最近看的排前面
func WatchHistory(ctx context.Context, c *app.RequestContext) {
	var req HistoryParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videos, total, err := service.NewWatchHistoryService(ctx).GetWatchHistory(getUserId(c), req.PageNum, req.PageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, utils.H{"items": videos, "total": total})
}
