package handlers

import (
	"context"

	"PlayTube.com/cmd/video/service"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// VideoList 公开视频流 支持关键词检索和白名单排序
func VideoList(ctx context.Context, c *app.RequestContext) {
	var req VideoListParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videos, total, err := service.NewVideoListService(ctx).GetVideoList(&service.VideoListParam{
		Keyword:  req.Query,
		SortBy:   req.SortBy,
		SortType: req.SortType,
		PageNum:  req.PageNum,
		PageSize: req.PageSize,
		ViewerId: getUserId(c),
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, utils.H{"items": videos, "total": total})
}

// AutocompleteSearch 标题前缀补全
func AutocompleteSearch(ctx context.Context, c *app.RequestContext) {
	var req AutocompleteParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	suggestions, err := service.NewVideoListService(ctx).Autocomplete(req.Query, req.Limit)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, suggestions)
}
