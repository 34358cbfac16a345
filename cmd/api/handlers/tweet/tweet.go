package handlers

import (
	"context"

	"PlayTube.com/cmd/tweet/service"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// CreateTweet 发动态
func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var req TweetParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if len(req.Content) > constants.MaxTweetLength {
		SendResponse(c, errno.ParamErr.WithMessage("tweet is too long"), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).CreateTweet(getUserId(c), req.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, tweet)
}

// UserTweets 某用户的动态列表
func UserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid user id"), nil)
		return
	}
	var req UserTweetsParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	tweets, total, err := service.NewTweetService(ctx).GetUserTweets(userId, getUserId(c), req.PageNum, req.PageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"items": tweets, "total": total})
}

// UpdateTweet 只有作者能改
func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid tweet id"), nil)
		return
	}
	var req TweetParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(tweetId, getUserId(c), req.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, tweet)
}

// DeleteTweet 只有作者能删
func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid tweet id"), nil)
		return
	}
	if err := service.NewTweetService(ctx).DeleteTweet(tweetId, getUserId(c)); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}
