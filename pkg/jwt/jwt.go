package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"playtube.com/config"
	"playtube.com/pkg/constants"
)

const IdentityKey = "user_id"

// key under which the resolved viewer id is stashed on the request context
const currentUserKey = "current_user_id"

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

func newMiddleware(secret string, timeout time.Duration, lookup string) *jwt.HertzJWTMiddleware {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "playtube",
		Key:           []byte(secret),
		Timeout:       timeout,
		IdentityKey:   IdentityKey,
		TokenLookup:   lookup,
		TokenHeadName: "Bearer",
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(int64); ok {
				return jwt.MapClaims{IdentityKey: v}
			}
			return jwt.MapClaims{}
		},
	})
	if err != nil {
		panic(err)
	}
	return mw
}

func AccessTokenJwtInit() {
	AccessTokenJwtMiddleware = newMiddleware(
		config.ConfigInfo.Jwt.AccessSecret,
		constants.AccessTokenExpire,
		"header: Authorization, cookie: access_token",
	)
}

func RefreshTokenJwtInit() {
	RefreshTokenJwtMiddleware = newMiddleware(
		config.ConfigInfo.Jwt.RefreshSecret,
		constants.RefreshTokenExpire,
		"header: Refresh-Token, cookie: refresh_token",
	)
}

// GenerateTokenPair issues a fresh access/refresh pair for the user.
func GenerateTokenPair(userId int64) (access string, refresh string, err error) {
	access, _, err = AccessTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	refresh, _, err = RefreshTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func claimsUserId(claims map[string]interface{}) (int64, bool) {
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return 0, false
	}
	id, ok := claims[IdentityKey].(float64)
	if !ok {
		return 0, false
	}
	return int64(id), true
}

// IsAccessTokenAvailable validates the access token and, when valid, stashes
// the viewer id on the request context.
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	id, ok := claimsUserId(claims)
	if !ok {
		return false
	}
	c.Set(currentUserKey, id)
	return true
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	id, ok := claimsUserId(claims)
	if !ok {
		return false
	}
	c.Set(currentUserKey, id)
	return true
}

// GenerateAccessToken mints a new access token for the viewer resolved from a
// still-valid refresh token and exposes it via the New-Access-Token header.
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	id, ok := CurrentUserId(c)
	if !ok {
		return
	}
	token, _, err := AccessTokenJwtMiddleware.TokenGenerator(id)
	if err != nil {
		return
	}
	c.Header("New-Access-Token", token)
}

// CurrentUserId returns the viewer id resolved by the auth middleware.
// ok=false means the request is anonymous.
func CurrentUserId(c *app.RequestContext) (int64, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id != 0
}
