package handlers

import (
	"context"

	"PlayTube.com/cmd/user/service"
	jwt "PlayTube.com/pkg"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// RefreshToken 校验refresh-token并和白名单比对 通过后整对轮换
// 旧refresh-token立即作废 重放会在比对这一步被拒掉
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsRefreshTokenAvailable(ctx, c) {
		SendResponse(c, errno.TokenInvailedErr, nil)
		return
	}
	v, _ := c.Get(jwt.IdentityKey)
	userId := utils.Transfer(v)

	incoming := jwt.GetRefreshTokenString(ctx, c)
	if err := service.NewRefreshTokenService(ctx).VerifyRefreshToken(userId, incoming); err != nil {
		SendResponse(c, err, nil)
		return
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := service.NewLoginUserService(ctx).RecordRefreshToken(userId, refreshToken); err != nil {
		SendResponse(c, err, nil)
		return
	}

	setTokenCookies(c, accessToken, refreshToken)
	SendResponse(c, nil, hutils.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
