package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// channel 表示被订阅的频道 subscriber 表示发起订阅的用户

// ToggleSubscription 先删后插 唯一索引兜底并发下的重复插入
// 返回值表示操作之后的订阅状态
func ToggleSubscription(ctx context.Context, channelId, subscriberId int64) (bool, error) {
	res := DB.WithContext(ctx).
		Where("channel_id = ? And subscriber_id = ?", channelId, subscriberId).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "ToggleSubscription delete failed,err:%v", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	sub := &model.Subscription{
		SubscriptionId: utils.NewID(),
		ChannelId:      channelId,
		SubscriberId:   subscriberId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	ins := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if ins.Error != nil {
		return false, errors.Wrapf(ins.Error, "ToggleSubscription create failed,err:%v", ins.Error)
	}
	// RowsAffected==0 说明并发请求已经插入过 都按已订阅处理
	return true, nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed,err:%v", err)
	}
	return count, nil
}

func CountSubscribedChannels(ctx context.Context, subscriberId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribedChannels failed,err:%v", err)
	}
	return count, nil
}

func IsSubscribed(ctx context.Context, channelId, subscriberId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ? And subscriber_id = ?", channelId, subscriberId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscribed failed,err:%v", err)
	}
	return count > 0, nil
}

// GetSubscriberIds 获取频道的全部订阅者id
func GetSubscriberIds(ctx context.Context, channelId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Select("subscriber_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscriberIds failed,err:%v", err)
	}
	return list, nil
}

// GetSubscribedChannelIds 获取用户订阅的全部频道id
func GetSubscribedChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Select("channel_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscribedChannelIds failed,err:%v", err)
	}
	return list, nil
}
