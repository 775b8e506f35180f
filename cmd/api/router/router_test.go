package router

import (
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"

	"playtube.com/config"
	"playtube.com/pkg/jwt"
)

func newTestServer() *server.Hertz {
	config.ConfigInfo.Jwt.AccessSecret = "test-access"
	config.ConfigInfo.Jwt.RefreshSecret = "test-refresh"
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	h := server.New()
	Register(h)
	return h
}

// The documented comment paths carry a verb segment; the short forms stay as
// aliases. Unauthenticated requests stop at the auth middleware, so a 401
// proves the route resolved while a 404 proves it did not.
func TestCommentRoutePaths(t *testing.T) {
	h := newTestServer()

	cases := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "add with verb segment", method: "POST", path: "/api/v1/comments/add/7", want: 401},
		{name: "add short form", method: "POST", path: "/api/v1/comments/7", want: 401},
		{name: "unregistered path", method: "POST", path: "/api/v1/commentz/7", want: 404},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ut.PerformRequest(h.Engine, tc.method, tc.path, nil)
			if got := w.Result().StatusCode(); got != tc.want {
				t.Errorf("%s %s: status %d, want %d", tc.method, tc.path, got, tc.want)
			}
		})
	}
}
