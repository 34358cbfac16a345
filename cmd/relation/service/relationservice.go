package service

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/relation/dal/db"
	userdb "PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/pkg/errno"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription 订阅/取消订阅 不允许订阅自己
func (s *RelationService) ToggleSubscription(channelId, subscriberId int64) (bool, error) {
	if channelId == subscriberId {
		return false, errno.ParamErr.WithMessage("cannot subscribe to yourself")
	}
	exist, err := userdb.CheckUserExistById(s.ctx, channelId)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, errno.RecordNotFoundErr.WithMessage("channel does not exist")
	}
	return db.ToggleSubscription(s.ctx, channelId, subscriberId)
}

// GetChannelSubscribers 频道的订阅者列表
func (s *RelationService) GetChannelSubscribers(channelId int64) ([]*model.User, error) {
	ids, err := db.GetSubscriberIds(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	return userdb.GetUsersByIds(s.ctx, ids)
}

// GetSubscribedChannels 用户订阅的频道列表
func (s *RelationService) GetSubscribedChannels(subscriberId int64) ([]*model.User, error) {
	ids, err := db.GetSubscribedChannelIds(s.ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	return userdb.GetUsersByIds(s.ctx, ids)
}
