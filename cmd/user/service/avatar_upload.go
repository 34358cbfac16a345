package service

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type AvatarUploadService struct {
	ctx context.Context
}

func NewAvatarUploadService(ctx context.Context) *AvatarUploadService {
	return &AvatarUploadService{ctx: ctx}
}

// UpdateAvatar 先传新头像 成功后再删旧对象 删除失败不影响本次更新
func (s *AvatarUploadService) UpdateAvatar(userId int64, data []byte, contentType string) (*model.User, error) {
	if len(data) == 0 {
		return nil, errno.ParamErr.WithMessage("avatar file is required")
	}
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	avatarUrl, err := oss.UploadImage(s.ctx, data, int64(len(data)), "avatar/"+uuid.New().String(), contentType)
	if err != nil {
		return nil, errors.WithMessage(err, "upload avatar failed")
	}
	if err := db.UpdateAvatarUrl(s.ctx, userId, avatarUrl); err != nil {
		return nil, err
	}
	if user.AvatarUrl != "" {
		if err := oss.DeleteByUrl(s.ctx, user.AvatarUrl); err != nil {
			hlog.Infof("delete old avatar failed: %v", err)
		}
	}
	return db.GetUser(s.ctx, userId)
}

// UpdateCover 封面更新 逻辑与头像一致
func (s *AvatarUploadService) UpdateCover(userId int64, data []byte, contentType string) (*model.User, error) {
	if len(data) == 0 {
		return nil, errno.ParamErr.WithMessage("cover image file is required")
	}
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	coverUrl, err := oss.UploadImage(s.ctx, data, int64(len(data)), "cover/"+uuid.New().String(), contentType)
	if err != nil {
		return nil, errors.WithMessage(err, "upload cover image failed")
	}
	if err := db.UpdateCoverUrl(s.ctx, userId, coverUrl); err != nil {
		return nil, err
	}
	if user.CoverUrl != "" {
		if err := oss.DeleteByUrl(s.ctx, user.CoverUrl); err != nil {
			hlog.Infof("delete old cover failed: %v", err)
		}
	}
	return db.GetUser(s.ctx, userId)
}
