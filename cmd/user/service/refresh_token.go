package service

import (
	"context"

	"PlayTube.com/cmd/user/infras/redis"
	"PlayTube.com/pkg/errno"
)

type RefreshTokenService struct {
	ctx context.Context
}

func NewRefreshTokenService(ctx context.Context) *RefreshTokenService {
	return &RefreshTokenService{ctx: ctx}
}

// VerifyRefreshToken 请求携带的refresh-token必须和白名单里记录的完全一致
// 轮换后旧token自然比对失败 防止已登出/已轮换的token被重放
func (s *RefreshTokenService) VerifyRefreshToken(userId int64, token string) error {
	stored, err := redis.GetRefreshToken(s.ctx, userId)
	if err != nil || stored == "" || stored != token {
		return errno.TokenInvailedErr.WithMessage("refresh token is expired or used")
	}
	return nil
}
