package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// refresh-token白名单 登出和轮换都会让旧token立即失效
// key: refresh_token:<user_id> value: 当前有效的refresh-token

func refreshTokenKey(userId int64) string {
	return fmt.Sprintf("refresh_token:%d", userId)
}

func SetRefreshToken(ctx context.Context, userId int64, token string, expiration time.Duration) error {
	if redisDB == nil {
		return errors.New("redis is not initialized")
	}
	if err := redisDB.Set(ctx, refreshTokenKey(userId), token, expiration).Err(); err != nil {
		hlog.Info("Redis set refresh token failed : ", err)
		return err
	}
	return nil
}

func GetRefreshToken(ctx context.Context, userId int64) (string, error) {
	if redisDB == nil {
		return "", errors.New("redis is not initialized")
	}
	token, err := redisDB.Get(ctx, refreshTokenKey(userId)).Result()
	if err != nil {
		hlog.Info("Redis get refresh token failed : ", err)
		return "", err
	}
	return token, nil
}

func DelRefreshToken(ctx context.Context, userId int64) error {
	if redisDB == nil {
		return errors.New("redis is not initialized")
	}
	if err := redisDB.Del(ctx, refreshTokenKey(userId)).Err(); err != nil {
		hlog.Info("Redis delete refresh token failed : ", err)
		return err
	}
	return nil
}
