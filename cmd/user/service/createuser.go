package service

import (
	"context"
	"strings"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type RegisterParam struct {
	UserName string
	FullName string
	Email    string
	Password string

	Avatar     []byte
	AvatarType string
	Cover      []byte
	CoverType  string
}

// CreateUser 注册 头像必传 封面可选 响应里不会带密码和refresh-token
func (s *CreateUserService) CreateUser(req *RegisterParam) (*model.User, error) {
	if req.UserName == "" || req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("all fields are required")
	}
	if len(req.Avatar) == 0 {
		return nil, errno.ParamErr.WithMessage("avatar file is required")
	}

	// 用户名统一小写存储 和源站保持一致
	username := strings.ToLower(req.UserName)
	if err := db.RemoveDuplicate(s.ctx, username, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "crypt password failed")
	}

	userId := utils.NewID()
	avatarUrl, err := oss.UploadImage(s.ctx, req.Avatar, int64(len(req.Avatar)), "avatar/"+uuid.New().String(), req.AvatarType)
	if err != nil {
		return nil, errors.WithMessage(err, "upload avatar failed")
	}
	coverUrl := ""
	if len(req.Cover) != 0 {
		coverUrl, err = oss.UploadImage(s.ctx, req.Cover, int64(len(req.Cover)), "cover/"+uuid.New().String(), req.CoverType)
		if err != nil {
			return nil, errors.WithMessage(err, "upload cover image failed")
		}
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    userId,
		UserName:  username,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashedPassword,
		AvatarUrl: avatarUrl,
		CoverUrl:  coverUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		return nil, err
	}
	hlog.Infof("user %d registered", userId)

	created, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "created user is not retrievable")
	}
	return created, nil
}
