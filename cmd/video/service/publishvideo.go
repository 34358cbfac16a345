package service

import (
	"context"
	"os"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/video/dal/db"
	videoelastic "PlayTube.com/cmd/video/infras/elastic"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type PublishVideoService struct {
	ctx context.Context
}

func NewPublishVideoService(ctx context.Context) *PublishVideoService {
	return &PublishVideoService{ctx: ctx}
}

type PublishVideoParam struct {
	UserId      int64
	Title       string
	Description string

	// VideoPath handler落盘后的临时文件 服务结束后由handler负责清理
	VideoPath     string
	Thumbnail     []byte
	ThumbnailType string
}

// PublishVideo 上传发布一条视频 时长用ffprobe探测 缩略图没传就截首帧
func (s *PublishVideoService) PublishVideo(req *PublishVideoParam) (*model.Video, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errno.ParamErr.WithMessage("title and description are required")
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("video file is required")
	}

	duration, err := utils.GetVideoDuration(req.VideoPath)
	if err != nil {
		return nil, errors.WithMessage(err, "probe video duration failed")
	}

	videoId := utils.NewID()
	videoUrl, err := oss.UploadVideo(s.ctx, req.VideoPath, uuid.New().String())
	if err != nil {
		return nil, errors.WithMessage(err, "upload video failed")
	}

	thumbnail := req.Thumbnail
	thumbnailType := req.ThumbnailType
	if len(thumbnail) == 0 {
		framePath, err := utils.GetVideoThumnail(req.VideoPath, os.TempDir())
		if err != nil {
			return nil, errors.WithMessage(err, "extract thumbnail failed")
		}
		defer os.Remove(framePath)
		thumbnail, err = os.ReadFile(framePath)
		if err != nil {
			return nil, errors.WithMessage(err, "read thumbnail failed")
		}
		thumbnailType = "image/jpeg"
	}
	coverUrl, err := oss.UploadImage(s.ctx, thumbnail, int64(len(thumbnail)), "thumbnail/"+uuid.New().String(), thumbnailType)
	if err != nil {
		return nil, errors.WithMessage(err, "upload thumbnail failed")
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		Title:       req.Title,
		Description: req.Description,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		return nil, err
	}

	if err := videoelastic.IndexVideo(s.ctx, &videoelastic.VideoDoc{
		VideoId:     video.VideoId,
		UserId:      video.UserId,
		Title:       video.Title,
		Description: video.Description,
		CoverUrl:    video.CoverUrl,
		CreatedAt:   video.CreatedAt,
	}); err != nil {
		// 索引失败不影响发布 搜索会少一条 后续更新时会补上
		hlog.Warnf("index video %d failed: %v", video.VideoId, err)
	}
	hlog.Infof("video %d published by user %d", videoId, req.UserId)
	return video, nil
}
