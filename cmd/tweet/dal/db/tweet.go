package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertTweet(ctx context.Context, tweet *model.Tweet) error {
	tweet.CreatedAt = time.Now().Format(constants.DataFormate)
	tweet.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(err, "insert tweet failed,err:%v", err)
	}
	return nil
}

func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).First(&tweet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.RecordNotFoundErr.WithMessage("tweet not found")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query tweet failed,err:%v", err)
	}
	return &tweet, nil
}

// QueryTweetsByUser 某用户的动态 新的排前面
func QueryTweetsByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Tweet, int64, error) {
	var tweets []*model.Tweet
	total, err := query.New(DB.WithContext(ctx), &model.Tweet{}).
		Filter("user_id = ?", userId).
		Paginate(pageNum, pageSize).
		Find(ctx, &tweets)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "query tweets failed,err:%v", err)
	}
	return tweets, total, nil
}

func UpdateTweet(ctx context.Context, tweetId int64, content string) error {
	err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		}).Error
	if err != nil {
		return errors.Wrapf(err, "update tweet failed,err:%v", err)
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "delete tweet failed,err:%v", err)
	}
	return nil
}
