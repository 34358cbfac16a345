package jwt

import (
	"context"
	"testing"

	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/app"
)

func initTestJwt(t *testing.T) {
	t.Helper()
	config.ConfigInfo.Jwt.AccessSecret = "test-access-secret"
	config.ConfigInfo.Jwt.RefreshSecret = "test-refresh-secret"
	config.ConfigInfo.Jwt.AccessExpireMin = 15
	config.ConfigInfo.Jwt.RefreshExpireHour = 24
	AccessTokenJwtInit()
	RefreshTokenJwtInit()
}

// TestGenerateTokenPair 两个token用各自的密钥签发 互相不能当对方用
func TestGenerateTokenPair(t *testing.T) {
	initTestJwt(t)

	accessToken, refreshToken, err := GenerateTokenPair(42)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed,err:%v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("token pair should not be empty")
	}
	if accessToken == refreshToken {
		t.Error("access token and refresh token should differ")
	}

	c := app.NewContext(0)
	c.Request.Header.SetCookie("accessToken", refreshToken)
	if IsAccessTokenAvailable(context.Background(), c) {
		t.Error("refresh token must not pass as an access token")
	}
}

// TestSilentRenewRequiresAllowlist 登出后白名单里已没有这个refresh-token
// 即使签名和有效期都合法 也不能静默续发access-token
func TestSilentRenewRequiresAllowlist(t *testing.T) {
	initTestJwt(t)

	_, refreshToken, err := GenerateTokenPair(42)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed,err:%v", err)
	}

	c := app.NewContext(0)
	c.Request.Header.SetCookie("refreshToken", refreshToken)

	if !IsRefreshTokenAvailable(context.Background(), c) {
		t.Fatal("freshly signed refresh token should still parse as valid")
	}
	if GenerateAccessToken(context.Background(), c) {
		t.Fatal("renew must be refused when the refresh token is not in the allowlist")
	}
	if string(c.Response.Header.Peek("New-Access-Token")) != "" {
		t.Error("no access token should be issued for a revoked refresh token")
	}
}
