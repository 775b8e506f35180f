package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	dashboard "playtube.com/cmd/api/handlers/dashboard"
	healthcheck "playtube.com/cmd/api/handlers/healthcheck"
	interaction "playtube.com/cmd/api/handlers/interaction"
	playlist "playtube.com/cmd/api/handlers/playlist"
	post "playtube.com/cmd/api/handlers/post"
	relation "playtube.com/cmd/api/handlers/relation"
	user "playtube.com/cmd/api/handlers/user"
	video "playtube.com/cmd/api/handlers/video"
	"playtube.com/cmd/api/router/authfunc"
)

// Register wires every route under /api/v1. Read routes that render
// viewer-relative data go through SoftAuth; everything mutating sits behind
// Auth plus the shared write limiter.
func Register(r *server.Hertz) {
	api := r.Group("/api/v1")

	users := api.Group("/users")
	{
		users.POST("/register", writeLimit(), user.Register)
		users.POST("/login", writeLimit(), user.Login)
		users.POST("/logout", append(authfunc.Auth(), user.Logout)...)
		users.POST("/refresh-token", user.RefreshToken)
		users.POST("/change-password", append(authfunc.Auth(), writeLimit(), user.ChangePassword)...)
		users.GET("/current-user", append(authfunc.Auth(), user.CurrentUser)...)
		users.PATCH("/update-account", append(authfunc.Auth(), writeLimit(), user.UpdateAccount)...)
		users.PATCH("/avatar", append(authfunc.Auth(), writeLimit(), user.UploadAvatar)...)
		users.PATCH("/cover-image", append(authfunc.Auth(), writeLimit(), user.UploadCover)...)
		users.GET("/c/:username", authfunc.SoftAuth(), user.ChannelProfile)
		users.GET("/history", append(authfunc.Auth(), user.WatchHistory)...)
		users.DELETE("/history", append(authfunc.Auth(), user.ClearWatchHistory)...)
	}

	videos := api.Group("/videos")
	{
		videos.GET("/", authfunc.SoftAuth(), video.ListVideos)
		videos.GET("/all/option", authfunc.SoftAuth(), video.ListVideosByOption)
		videos.POST("/", append(authfunc.Auth(), writeLimit(), video.PublishVideo)...)
		videos.GET("/:id", authfunc.SoftAuth(), video.VideoDetail)
		videos.PATCH("/:id", append(authfunc.Auth(), writeLimit(), video.UpdateVideo)...)
		videos.DELETE("/:id", append(authfunc.Auth(), writeLimit(), video.DeleteVideo)...)
		videos.PATCH("/toggle/publish/:id", append(authfunc.Auth(), writeLimit(), video.TogglePublish)...)
		videos.PATCH("/view/:id", authfunc.SoftAuth(), video.VisitVideo)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/get/:videoId", authfunc.SoftAuth(), interaction.ListComments)
		comments.POST("/add/:videoId", append(authfunc.Auth(), writeLimit(), interaction.AddComment)...)
		// short forms kept for clients that skip the verb segment
		comments.GET("/:videoId", authfunc.SoftAuth(), interaction.ListComments)
		comments.POST("/:videoId", append(authfunc.Auth(), writeLimit(), interaction.AddComment)...)
		comments.PATCH("/c/:id", append(authfunc.Auth(), writeLimit(), interaction.UpdateComment)...)
		comments.DELETE("/c/:id", append(authfunc.Auth(), writeLimit(), interaction.DeleteComment)...)
	}

	likes := api.Group("/likes", authfunc.Auth()...)
	{
		likes.PATCH("/video/:id", writeLimit(), interaction.ToggleVideoLike)
		likes.PATCH("/comment/:id", writeLimit(), interaction.ToggleCommentLike)
		likes.PATCH("/post/:id", writeLimit(), interaction.TogglePostLike)
		likes.GET("/videos", interaction.LikedVideos)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", append(authfunc.Auth(), writeLimit(), relation.ToggleSubscription)...)
		subscriptions.GET("/c/:channelId", authfunc.SoftAuth(), relation.Subscribers)
		subscriptions.GET("/u/:subscriberId", authfunc.SoftAuth(), relation.SubscribedChannels)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("/", append(authfunc.Auth(), writeLimit(), playlist.CreatePlaylist)...)
		playlists.GET("/user/:userId", playlist.UserPlaylists)
		playlists.GET("/:id", playlist.PlaylistDetail)
		playlists.PATCH("/:id", append(authfunc.Auth(), writeLimit(), playlist.UpdatePlaylist)...)
		playlists.DELETE("/:id", append(authfunc.Auth(), writeLimit(), playlist.DeletePlaylist)...)
		playlists.PATCH("/add/:videoId/:playlistId", append(authfunc.Auth(), writeLimit(), playlist.AddVideoToPlaylist)...)
		playlists.PATCH("/remove/:videoId/:playlistId", append(authfunc.Auth(), writeLimit(), playlist.RemoveVideoFromPlaylist)...)
		playlists.GET("/save/:videoId", append(authfunc.Auth(), playlist.SavePlaylists)...)
	}

	posts := api.Group("/posts")
	{
		posts.POST("/", append(authfunc.Auth(), writeLimit(), post.CreatePost)...)
		posts.GET("/user/:userId", authfunc.SoftAuth(), post.UserPosts)
		posts.GET("/feed", authfunc.SoftAuth(), post.PostFeed)
		posts.PATCH("/:id", append(authfunc.Auth(), writeLimit(), post.UpdatePost)...)
		posts.DELETE("/:id", append(authfunc.Auth(), writeLimit(), post.DeletePost)...)
	}

	board := api.Group("/dashboard", authfunc.Auth()...)
	{
		board.GET("/stats", dashboard.ChannelStats)
		board.GET("/videos", dashboard.ChannelVideos)
	}

	api.GET("/healthcheck", healthcheck.Healthcheck)
}
