package service

import (
	"context"

	"PlayTube.com/cmd/model"
	relationdb "PlayTube.com/cmd/relation/dal/db"
	"PlayTube.com/cmd/user/dal/db"
	"github.com/pkg/errors"
)

type ChannelProfileService struct {
	ctx context.Context
}

func NewChannelProfileService(ctx context.Context) *ChannelProfileService {
	return &ChannelProfileService{ctx: ctx}
}

// GetChannelProfile 频道主页视图 三个派生字段都相对viewerId计算
// viewerId为0表示匿名访问 is_subscribed恒为false
func (s *ChannelProfileService) GetChannelProfile(username string, viewerId int64) (*model.ChannelProfile, error) {
	user, err := db.GetUserByName(s.ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := relationdb.CountSubscribers(s.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "count subscribers failed")
	}
	subscribedTo, err := relationdb.CountSubscribedChannels(s.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "count subscribed channels failed")
	}
	isSubscribed := false
	if viewerId > 0 {
		isSubscribed, err = relationdb.IsSubscribed(s.ctx, user.UserId, viewerId)
		if err != nil {
			return nil, errors.WithMessage(err, "check subscription failed")
		}
	}

	return &model.ChannelProfile{
		UserId:                    user.UserId,
		UserName:                  user.UserName,
		FullName:                  user.FullName,
		Email:                     user.Email,
		AvatarUrl:                 user.AvatarUrl,
		CoverUrl:                  user.CoverUrl,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
		CreatedAt:                 user.CreatedAt,
	}, nil
}
