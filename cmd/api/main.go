package main

import (
	"context"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	playlistdb "PlayTube.com/cmd/playlist/dal/db"
	relationdb "PlayTube.com/cmd/relation/dal/db"
	tweetdb "PlayTube.com/cmd/tweet/dal/db"
	userdb "PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/cmd/user/infras/redis"
	videodb "PlayTube.com/cmd/video/dal/db"
	videoelastic "PlayTube.com/cmd/video/infras/elastic"
	"PlayTube.com/config"
	jwt "PlayTube.com/pkg"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/oss"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	if err := utils.InitSnowflake(0, 0); err != nil {
		panic(err)
	}
	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	playlistdb.Init()
	tweetdb.Init()
	redis.Init()
	if err := oss.InitMinio(); err != nil {
		panic(err)
	}
	videoelastic.Init()
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
}

// recovery panic统一折叠成500响应 留日志
func recovery() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if r := recover(); r != nil {
				hlog.Errorf("panic recovered: %v", r)
				c.JSON(int(errno.ServiceErrCode), map[string]interface{}{
					"statusCode": errno.ServiceErrCode,
					"message":    "internal server error",
					"success":    false,
				})
				c.Abort()
			}
		}()
		c.Next(ctx)
	}
}

func main() {
	Init()
	h := server.Default(server.WithHostPorts(config.ConfigInfo.Server.Addr))
	h.Use(recovery())
	register(h)
	logrus.Infof("server listening on %s", config.ConfigInfo.Server.Addr)
	h.Spin()
}
