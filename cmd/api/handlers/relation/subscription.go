package handlers

import (
	"context"

	"PlayTube.com/cmd/relation/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// ToggleSubscription 订阅/退订某频道 不能订阅自己
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid channel id"), nil)
		return
	}
	subscribed, err := service.NewRelationService(ctx).ToggleSubscription(channelId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"subscribed": subscribed})
}

// ChannelSubscribers 某频道的订阅者列表
func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid channel id"), nil)
		return
	}
	subscribers, err := service.NewRelationService(ctx).GetChannelSubscribers(channelId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, subscribers)
}

// SubscribedChannels 某用户订阅的频道列表
func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := utils.ConvertStringToInt64(c.Param("subscriber_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid subscriber id"), nil)
		return
	}
	channels, err := service.NewRelationService(ctx).GetSubscribedChannels(subscriberId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, channels)
}
