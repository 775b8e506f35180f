package authfunc

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc rejects requests without a usable token. An expired
// access token rides on a still-valid refresh token: the request goes
// through and a fresh access token comes back in the New-Access-Token
// header.
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				common.SendResponse(c, errno.TokenInvailedErr, nil)
				c.Abort()
				return
			}
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}

// SoftAuth resolves the viewer when a valid token is present and lets the
// request through anonymously otherwise. Handlers behind it read the viewer
// id and get zero for anonymous requests.
func SoftAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) && jwt.IsRefreshTokenAvailable(ctx, c) {
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}
