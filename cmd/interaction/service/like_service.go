package service

import (
	"context"

	"PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	tweetdb "PlayTube.com/cmd/tweet/dal/db"
	userdb "PlayTube.com/cmd/user/dal/db"
	videodb "PlayTube.com/cmd/video/dal/db"
	"PlayTube.com/pkg/query"
	"github.com/pkg/errors"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// ToggleVideoLike 返回本次调用之后的点赞状态
func (s *LikeService) ToggleVideoLike(videoId, userId int64) (bool, error) {
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		return false, err
	}
	return db.ToggleLike(s.ctx, &model.Like{UserId: userId, VideoId: videoId})
}

func (s *LikeService) ToggleCommentLike(commentId, userId int64) (bool, error) {
	if _, err := db.GetComment(s.ctx, commentId); err != nil {
		return false, err
	}
	return db.ToggleLike(s.ctx, &model.Like{UserId: userId, CommentId: commentId})
}

func (s *LikeService) ToggleTweetLike(tweetId, userId int64) (bool, error) {
	if _, err := tweetdb.GetTweet(s.ctx, tweetId); err != nil {
		return false, err
	}
	return db.ToggleLike(s.ctx, &model.Like{UserId: userId, TweetId: tweetId})
}

// GetLikedVideos 用户点赞过的视频 按点赞时间倒序 带作者信息
func (s *LikeService) GetLikedVideos(userId, pageNum, pageSize int64) ([]*model.VideoInfo, int64, error) {
	pageNum, pageSize = query.NormalizePage(pageNum, pageSize)
	ids, total, err := db.GetLikedVideoIds(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []*model.VideoInfo{}, total, nil
	}
	videos, err := videodb.GetVideosByIds(s.ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	seen := make(map[int64]struct{}, len(videos))
	for _, v := range videos {
		videoById[v.VideoId] = v
		if _, ok := seen[v.UserId]; !ok {
			seen[v.UserId] = struct{}{}
			ownerIds = append(ownerIds, v.UserId)
		}
	}
	owners, err := userdb.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "query video owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	// 点赞行还在但视频已经删掉的跳过
	infos := make([]*model.VideoInfo, 0, len(ids))
	for _, id := range ids {
		v, ok := videoById[id]
		if !ok {
			continue
		}
		likes, err := db.CountLikesByVideo(s.ctx, v.VideoId)
		if err != nil {
			return nil, 0, err
		}
		info := &model.VideoInfo{Video: *v, LikesCount: likes, IsLiked: true}
		if owner, ok := ownerById[v.UserId]; ok {
			info.Author = &model.Author{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			}
		}
		infos = append(infos, info)
	}
	return infos, total, nil
}
