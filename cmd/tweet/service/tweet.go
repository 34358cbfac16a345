package service

import (
	"context"
	"time"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/tweet/dal/db"
	userdb "PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	tweet := &model.Tweet{
		TweetId:   utils.NewID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertTweet(s.ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// GetUserTweets 某用户的动态列表 作者只查一次 点赞相对viewerId算
func (s *TweetService) GetUserTweets(userId, viewerId, pageNum, pageSize int64) ([]*model.TweetInfo, int64, error) {
	if exist, err := userdb.CheckUserExistById(s.ctx, userId); err != nil {
		return nil, 0, err
	} else if !exist {
		return nil, 0, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	pageNum, pageSize = query.NormalizePage(pageNum, pageSize)
	tweets, total, err := db.QueryTweetsByUser(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(tweets) == 0 {
		return []*model.TweetInfo{}, total, nil
	}

	author, err := userdb.GetUser(s.ctx, userId)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "query tweet author failed")
	}
	infos := make([]*model.TweetInfo, 0, len(tweets))
	for _, t := range tweets {
		likes, err := interactiondb.CountLikesByTweet(s.ctx, t.TweetId)
		if err != nil {
			return nil, 0, err
		}
		isLiked := false
		if viewerId > 0 {
			isLiked, err = interactiondb.IsTweetLiked(s.ctx, viewerId, t.TweetId)
			if err != nil {
				return nil, 0, err
			}
		}
		infos = append(infos, &model.TweetInfo{
			Tweet:      *t,
			LikesCount: likes,
			IsLiked:    isLiked,
			Author: &model.Author{
				UserId:    author.UserId,
				UserName:  author.UserName,
				FullName:  author.FullName,
				AvatarUrl: author.AvatarUrl,
			},
		})
	}
	return infos, total, nil
}

// UpdateTweet 只有作者能改
func (s *TweetService) UpdateTweet(tweetId, userId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		return nil, err
	}
	if tweet.UserId != userId {
		return nil, errno.ForbiddenErr
	}
	if err := db.UpdateTweet(s.ctx, tweetId, content); err != nil {
		return nil, err
	}
	return db.GetTweet(s.ctx, tweetId)
}

// DeleteTweet 只有作者能删 动态上的点赞一并清掉
func (s *TweetService) DeleteTweet(tweetId, userId int64) error {
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		return err
	}
	if tweet.UserId != userId {
		return errno.ForbiddenErr
	}
	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		return err
	}
	return interactiondb.DeleteLikesByTweet(s.ctx, tweetId)
}
