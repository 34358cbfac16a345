package service

import (
	"context"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	relationdb "PlayTube.com/cmd/relation/dal/db"
	"PlayTube.com/cmd/video/dal/db"
	"PlayTube.com/pkg/query"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// GetStats 频道总览 四个数字都是当场算的 不做缓存
func (s *DashboardService) GetStats(userId int64) (*model.DashboardStats, error) {
	totalVideos, err := db.CountVideosByOwner(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	totalViews, err := db.SumVisitCountByOwner(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := relationdb.CountSubscribers(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	totalLikes, err := interactiondb.SumLikesOnOwnerVideos(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	return &model.DashboardStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// GetChannelVideos 频道主自己的视频列表 未发布的也在里面
func (s *DashboardService) GetChannelVideos(userId, pageNum, pageSize int64) ([]*model.VideoInfo, int64, error) {
	pageNum, pageSize = query.NormalizePage(pageNum, pageSize)
	videos, total, err := db.QueryVideosByOwner(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	infos, err := buildVideoInfos(s.ctx, videos, userId)
	if err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}
