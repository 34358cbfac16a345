package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// targetClause 点赞目标三选一 不满足直接拒绝 保护复合唯一索引的语义
func targetClause(like *model.Like) (string, int64, error) {
	set := 0
	var column string
	var id int64
	if like.VideoId > 0 {
		set++
		column, id = "video_id", like.VideoId
	}
	if like.CommentId > 0 {
		set++
		column, id = "comment_id", like.CommentId
	}
	if like.TweetId > 0 {
		set++
		column, id = "tweet_id", like.TweetId
	}
	if set != 1 {
		return "", 0, errno.ParamErr.WithMessage("a like must reference exactly one target")
	}
	return column, id, nil
}

// ToggleLike 先删后插 两步都是幂等的 并发双击最多留下一行
// 返回true表示本次调用后处于已点赞状态
func ToggleLike(ctx context.Context, like *model.Like) (bool, error) {
	column, id, err := targetClause(like)
	if err != nil {
		return false, err
	}
	res := DB.WithContext(ctx).
		Where("user_id = ? AND "+column+" = ?", like.UserId, id).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "delete like failed,err:%v", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	like.LikeId = utils.NewID()
	like.CreatedAt = time.Now().Format(constants.DataFormate)
	err = DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
	if err != nil {
		return false, errors.Wrapf(err, "insert like failed,err:%v", err)
	}
	return true, nil
}

func CountLikesByVideo(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).Where("video_id = ?", videoId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count video likes failed,err:%v", err)
	}
	return count, nil
}

func CountLikesByComment(ctx context.Context, commentId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).Where("comment_id = ?", commentId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count comment likes failed,err:%v", err)
	}
	return count, nil
}

func CountLikesByTweet(ctx context.Context, tweetId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).Where("tweet_id = ?", tweetId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count tweet likes failed,err:%v", err)
	}
	return count, nil
}

func IsVideoLiked(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check video like failed,err:%v", err)
	}
	return count > 0, nil
}

func IsCommentLiked(ctx context.Context, userId, commentId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND comment_id = ?", userId, commentId).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check comment like failed,err:%v", err)
	}
	return count > 0, nil
}

func IsTweetLiked(ctx context.Context, userId, tweetId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND tweet_id = ?", userId, tweetId).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check tweet like failed,err:%v", err)
	}
	return count > 0, nil
}

// GetLikedVideoIds 用户点赞过的视频id 按点赞时间倒序
func GetLikedVideoIds(ctx context.Context, userId, pageNum, pageSize int64) ([]int64, int64, error) {
	var total int64
	base := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND video_id > 0", userId)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "count liked videos failed,err:%v", err)
	}
	var ids []int64
	err := base.Order("created_at DESC").
		Offset(int((pageNum - 1) * pageSize)).
		Limit(int(pageSize)).
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "query liked videos failed,err:%v", err)
	}
	return ids, total, nil
}

// SumLikesOnOwnerVideos 频道主所有视频收到的点赞总数
func SumLikesOnOwnerVideos(ctx context.Context, userId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.video_id = likes.video_id").
		Where("videos.user_id = ?", userId).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "sum channel likes failed,err:%v", err)
	}
	return count, nil
}

func DeleteLikesByVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "delete video likes failed,err:%v", err)
	}
	return nil
}

func DeleteLikesByComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "delete comment likes failed,err:%v", err)
	}
	return nil
}

func DeleteLikesByTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "delete tweet likes failed,err:%v", err)
	}
	return nil
}
