package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	interactionhandlers "playtube.com/cmd/api/handlers/interaction"
	videohandlers "playtube.com/cmd/api/handlers/video"
	"playtube.com/cmd/api/router"
	interactiondb "playtube.com/cmd/interaction/dal/db"
	interactionservice "playtube.com/cmd/interaction/service"
	playlistdb "playtube.com/cmd/playlist/dal/db"
	postdb "playtube.com/cmd/post/dal/db"
	relationdb "playtube.com/cmd/relation/dal/db"
	userdb "playtube.com/cmd/user/dal/db"
	videodb "playtube.com/cmd/video/dal/db"
	videoservice "playtube.com/cmd/video/service"
	"playtube.com/config"
	"playtube.com/pkg/cache"
	"playtube.com/pkg/database"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/lock"
	"playtube.com/pkg/mq"
	"playtube.com/pkg/oss"
)

func rabbitmqURL() string {
	mqConf := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", mqConf.Username, mqConf.Password, mqConf.Addr)
}

func Init() {
	config.Init()
	database.Init()

	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	playlistdb.Init()
	postdb.Init()

	if err := cache.Init(); err != nil {
		hlog.Fatalf("redis init: %v", err)
	}
	lock.Init()
	if err := oss.Init(); err != nil {
		hlog.Fatalf("minio init: %v", err)
	}

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
	router.InitRateLimit()
}

func startMQ(ctx context.Context) {
	url := rabbitmqURL()
	producer, err := mq.NewProducer(url)
	if err != nil {
		hlog.Fatalf("rabbitmq producer: %v", err)
	}
	videohandlers.Producer = producer
	interactionhandlers.Producer = producer

	consumer, err := mq.NewConsumer(url)
	if err != nil {
		hlog.Fatalf("rabbitmq consumer: %v", err)
	}
	if err := consumer.ConsumeViewEvents(ctx, func(ctx context.Context, event *mq.ViewEvent) error {
		_, err := videoservice.ApplyViewEvent(ctx, event)
		return err
	}); err != nil {
		hlog.Fatalf("consume view events: %v", err)
	}
	if err := consumer.ConsumeLikeEvents(ctx, interactionservice.ApplyLikeEvent); err != nil {
		hlog.Fatalf("consume like events: %v", err)
	}
}

func main() {
	Init()
	startMQ(context.Background())

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(4*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Refresh-Token"},
		ExposeHeaders:    []string{"Content-Length", "New-Access-Token"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"statusCode": errno.ServiceErrCode,
				"message":    "Internal server error",
				"success":    false,
			})
		})))

	router.Register(r)

	r.Spin()
}
