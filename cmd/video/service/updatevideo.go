package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/video/dal/db"
	videoelastic "PlayTube.com/cmd/video/infras/elastic"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type UpdateVideoService struct {
	ctx context.Context
}

func NewUpdateVideoService(ctx context.Context) *UpdateVideoService {
	return &UpdateVideoService{ctx: ctx}
}

type UpdateVideoParam struct {
	VideoId     int64
	UserId      int64
	Title       string
	Description string

	Thumbnail     []byte
	ThumbnailType string
}

// UpdateVideo 改标题和简介 缩略图可选 换图成功后旧图尽力删除
func (s *UpdateVideoService) UpdateVideo(req *UpdateVideoParam) (*model.Video, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errno.ParamErr.WithMessage("title and description are required")
	}
	video, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != req.UserId {
		return nil, errno.ForbiddenErr
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"updated_at":  time.Now().Format(constants.DataFormate),
	}
	oldCoverUrl := ""
	if len(req.Thumbnail) != 0 {
		coverUrl, err := oss.UploadImage(s.ctx, req.Thumbnail, int64(len(req.Thumbnail)), "thumbnail/"+uuid.New().String(), req.ThumbnailType)
		if err != nil {
			return nil, errors.WithMessage(err, "upload thumbnail failed")
		}
		updates["cover_url"] = coverUrl
		oldCoverUrl = video.CoverUrl
	}
	if err := db.UpdateVideo(s.ctx, req.VideoId, updates); err != nil {
		return nil, err
	}
	if oldCoverUrl != "" {
		if err := oss.DeleteByUrl(s.ctx, oldCoverUrl); err != nil {
			hlog.Warnf("delete old thumbnail failed: %v", err)
		}
	}

	updated, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		return nil, err
	}
	if updated.IsPublished {
		if err := videoelastic.IndexVideo(s.ctx, &videoelastic.VideoDoc{
			VideoId:     updated.VideoId,
			UserId:      updated.UserId,
			Title:       updated.Title,
			Description: updated.Description,
			CoverUrl:    updated.CoverUrl,
			CreatedAt:   updated.CreatedAt,
		}); err != nil {
			hlog.Warnf("reindex video %d failed: %v", updated.VideoId, err)
		}
	}
	return updated, nil
}
