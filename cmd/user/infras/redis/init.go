package redis

import (
	"context"

	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisDB *redis.Client

func Init() {
	redisDB = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	pong, err := redisDB.Ping(context.Background()).Result()
	if err != nil {
		hlog.Info("Could not connect to redis : ", err)
	}
	hlog.Info("Connected to redis : ", pong)
}
