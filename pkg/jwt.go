package jwt

import (
	"context"
	"time"

	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/cmd/user/infras/redis"
	"PlayTube.com/config"
	"PlayTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

type loginParam struct {
	UserName string `json:"user_name" form:"user_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AccessTokenJwtInit access-token走 Authorization 头或 accessToken cookie
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:          "playtube-access",
		Key:            []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:        time.Duration(config.ConfigInfo.Jwt.AccessExpireMin) * time.Minute,
		MaxRefresh:     time.Hour,
		IdentityKey:    IdentityKey,
		TokenLookup:    "header: Authorization, cookie: accessToken",
		TokenHeadName:  "Bearer",
		SendCookie:     true,
		CookieName:     "accessToken",
		CookieMaxAge:   time.Duration(config.ConfigInfo.Jwt.AccessExpireMin) * time.Minute,
		CookieHTTPOnly: true,
		CookieSameSite: protocol.CookieSameSiteLaxMode,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(int64); ok {
				return jwt.MapClaims{IdentityKey: v}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return int64(claims[IdentityKey].(float64))
		},
		Authenticator: authenticate,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Access-Token", token)
		},
		Unauthorized: unauthorized,
	})
	if err != nil {
		panic(err)
	}
}

// RefreshTokenJwtInit refresh-token只认 refreshToken cookie 或专用头
func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:          "playtube-refresh",
		Key:            []byte(config.ConfigInfo.Jwt.RefreshSecret),
		Timeout:        time.Duration(config.ConfigInfo.Jwt.RefreshExpireHour) * time.Hour,
		MaxRefresh:     time.Hour,
		IdentityKey:    IdentityKey,
		TokenLookup:    "cookie: refreshToken, header: X-Refresh-Token",
		TokenHeadName:  "Bearer",
		SendCookie:     true,
		CookieName:     "refreshToken",
		CookieMaxAge:   time.Duration(config.ConfigInfo.Jwt.RefreshExpireHour) * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: protocol.CookieSameSiteLaxMode,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(int64); ok {
				return jwt.MapClaims{IdentityKey: v}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return int64(claims[IdentityKey].(float64))
		},
		Authenticator: authenticate,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Refresh-Token", token)
		},
		Unauthorized: unauthorized,
	})
	if err != nil {
		panic(err)
	}
}

// authenticate LoginHandler触发 校验账号密码后返回用户id作为payload
func authenticate(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	var login loginParam
	if err := c.Bind(&login); err != nil {
		return nil, jwt.ErrMissingLoginValues
	}
	user, err := db.CheckUser(ctx, login.UserName, login.Email, login.Password)
	if err != nil {
		return nil, jwt.ErrFailedAuthentication
	}
	return user.UserId, nil
}

func unauthorized(ctx context.Context, c *app.RequestContext, code int, message string) {
	c.JSON(code, map[string]interface{}{
		"statusCode": errno.AuthorizationFailedErrCode,
		"message":    message,
		"success":    false,
	})
}

// IsAccessTokenAvailable 校验access-token是否有效且未过期
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return false
	}
	v, ok := claims[IdentityKey]
	if !ok {
		return false
	}
	c.Set(IdentityKey, int64(v.(float64)))
	return true
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return false
	}
	v, ok := claims[IdentityKey]
	if !ok {
		return false
	}
	c.Set(IdentityKey, int64(v.(float64)))
	return true
}

// GenerateAccessToken refresh-token还在有效期并且仍在白名单里时 静默续发一个新的access-token
// 登出和轮换都会把旧token移出白名单 所以被撤销的refresh-token在这里续不出任何东西
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) bool {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		hlog.Info("generate access token failed: ", err)
		return false
	}
	uid, ok := claims[IdentityKey].(float64)
	if !ok {
		return false
	}
	stored, err := redis.GetRefreshToken(ctx, int64(uid))
	if err != nil || stored == "" || stored != GetRefreshTokenString(ctx, c) {
		hlog.Infof("refresh token of user %d is not in the allowlist, renew refused", int64(uid))
		return false
	}
	token, expire, err := AccessTokenJwtMiddleware.TokenGenerator(int64(uid))
	if err != nil {
		hlog.Info("generate access token failed: ", err)
		return false
	}
	maxAge := int(time.Until(expire).Seconds())
	c.SetCookie("accessToken", token, maxAge, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.Header("New-Access-Token", token)
	c.Set(IdentityKey, int64(uid))
	return true
}

// GenerateTokenPair 为指定用户直接签发一对新token（refresh轮换时使用）
func GenerateTokenPair(userId int64) (accessToken string, refreshToken string, err error) {
	accessToken, _, err = AccessTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = RefreshTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ConvertJWTPayloadToString 从access-token里取出用户标识
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return nil, errno.TokenInvailedErr
	}
	v, ok := claims[IdentityKey]
	if !ok {
		return nil, errno.TokenInvailedErr
	}
	return v, nil
}

// GetRefreshTokenString 取出请求携带的原始refresh-token 用于和存储的值比对
func GetRefreshTokenString(ctx context.Context, c *app.RequestContext) string {
	if cookie := c.Cookie("refreshToken"); len(cookie) != 0 {
		return string(cookie)
	}
	return string(c.GetHeader("X-Refresh-Token"))
}
