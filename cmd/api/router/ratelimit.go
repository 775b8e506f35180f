package router

import (
	"context"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/config"
	"playtube.com/pkg/errno"
)

const writeResource = "write_api"

// InitRateLimit loads the QPS rule shared by all mutating endpoints.
func InitRateLimit() {
	if err := sentinel.InitDefault(); err != nil {
		hlog.Fatalf("sentinel init: %v", err)
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               writeResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              config.ConfigInfo.RateLimit.WriteQPS,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		hlog.Fatalf("sentinel load rules: %v", err)
	}
}

func writeLimit() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blocked := sentinel.Entry(writeResource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			common.SendResponse(c, errno.LimitErr, nil)
			c.Abort()
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
