package service

import (
	"context"

	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/cmd/user/infras/redis"
)

type LogoutService struct {
	ctx context.Context
}

func NewLogoutService(ctx context.Context) *LogoutService {
	return &LogoutService{ctx: ctx}
}

// Logout 清掉数据库里的refresh-token并从白名单删除 旧token即刻作废
func (s *LogoutService) Logout(userId int64) error {
	if err := db.UpdateRefreshToken(s.ctx, userId, ""); err != nil {
		return err
	}
	return redis.DelRefreshToken(s.ctx, userId)
}
