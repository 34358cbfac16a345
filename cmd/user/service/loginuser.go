package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/cmd/user/infras/redis"
	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

type LoginParam struct {
	UserName string
	Email    string
	Password string
}

func (s *LoginUserService) LoginUser(req *LoginParam) (*model.User, error) {
	user, err := db.CheckUser(s.ctx, req.UserName, req.Email, req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUser failed")
	}
	return user, nil
}

// RecordRefreshToken 登录/轮换后把refresh-token写进数据库和redis白名单
func (s *LoginUserService) RecordRefreshToken(userId int64, token string) error {
	expiration := time.Duration(config.ConfigInfo.Jwt.RefreshExpireHour) * time.Hour
	if err := redis.SetRefreshToken(s.ctx, userId, token, expiration); err != nil {
		return err
	}
	if err := db.UpdateRefreshToken(s.ctx, userId, token); err != nil {
		return err
	}
	hlog.Infof("refresh token recorded for user %d", userId)
	return nil
}
