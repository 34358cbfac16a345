package service

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/video/dal/db"
	videoelastic "PlayTube.com/cmd/video/infras/elastic"
	"PlayTube.com/pkg/query"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

type VideoListParam struct {
	Keyword  string
	SortBy   string
	SortType string
	PageNum  int64
	PageSize int64
	ViewerId int64
}

// useSearchIndex ES只承担相关度排序 调用方显式指定排序字段时走MySQL
func useSearchIndex(keyword, sortBy string) bool {
	return keyword != "" && sortBy == ""
}

// GetVideoList 公开视频流 带关键词且未指定排序时走ES 其余场景走MySQL
// ES里只进已发布的视频 所以检索结果不需要再过滤可见性
func (s *VideoListService) GetVideoList(req *VideoListParam) ([]*model.VideoInfo, int64, error) {
	pageNum, pageSize := query.NormalizePage(req.PageNum, req.PageSize)

	if useSearchIndex(req.Keyword, req.SortBy) && videoelastic.Available() {
		ids, total, err := videoelastic.SearchVideos(s.ctx, req.Keyword, pageNum, pageSize)
		if err != nil {
			return nil, 0, err
		}
		videos, err := db.GetVideosByIds(s.ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		// GetVideosByIds不保序 按检索相关度重排
		videoById := make(map[int64]*model.Video, len(videos))
		for _, v := range videos {
			videoById[v.VideoId] = v
		}
		ordered := make([]*model.Video, 0, len(ids))
		for _, id := range ids {
			if v, ok := videoById[id]; ok {
				ordered = append(ordered, v)
			}
		}
		infos, err := buildVideoInfos(s.ctx, ordered, req.ViewerId)
		if err != nil {
			return nil, 0, err
		}
		return infos, total, nil
	}

	videos, total, err := db.QueryVideos(s.ctx, req.Keyword, req.SortBy, req.SortType, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	infos, err := buildVideoInfos(s.ctx, videos, req.ViewerId)
	if err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}

// Autocomplete 标题前缀补全 ES不可用时返回空列表而不是报错
func (s *VideoListService) Autocomplete(prefix string, size int64) ([]*model.SearchSuggestion, error) {
	if prefix == "" {
		return []*model.SearchSuggestion{}, nil
	}
	if size <= 0 || size > 20 {
		size = 10
	}
	return videoelastic.Autocomplete(s.ctx, prefix, size)
}
