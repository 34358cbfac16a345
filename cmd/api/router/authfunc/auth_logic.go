package authfunc

import (
	"context"

	jwt "PlayTube.com/pkg"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc access-token过期但refresh-token还有效且在白名单里时静默续签
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) || !jwt.GenerateAccessToken(ctx, c) {
				c.JSON(consts.StatusUnauthorized, map[string]interface{}{
					"statusCode": errno.AuthorizationFailedErrCode,
					"message":    errno.TokenInvailedErr.ErrMsg,
					"success":    false,
				})
				c.Abort()
				return
			}
		}
		c.Next(ctx)
	}
}

// OptionalAuthFunc 匿名也放行 带了有效token就把user_id放进上下文
func OptionalAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwt.IsAccessTokenAvailable(ctx, c)
		c.Next(ctx)
	}
}
