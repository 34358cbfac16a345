package service

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/user/dal/db"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) GetUserInfo(userId int64) (*model.User, error) {
	return db.GetUser(s.ctx, userId)
}
