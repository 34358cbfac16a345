package main

import (
	"context"
	"time"

	interactionhandlers "PlayTube.com/cmd/api/handlers/interaction"
	playlisthandlers "PlayTube.com/cmd/api/handlers/playlist"
	relationhandlers "PlayTube.com/cmd/api/handlers/relation"
	tweethandlers "PlayTube.com/cmd/api/handlers/tweet"
	userhandlers "PlayTube.com/cmd/api/handlers/user"
	videohandlers "PlayTube.com/cmd/api/handlers/video"
	"PlayTube.com/cmd/api/router/authfunc"
	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func register(r *server.Hertz) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Refresh-Token"},
		ExposeHeaders:    []string{"New-Access-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, map[string]interface{}{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", userhandlers.Register)
		users.POST("/login", userhandlers.Login)
		users.POST("/refresh-token", userhandlers.RefreshToken)
		users.GET("/c/:username", authfunc.OptionalAuthFunc(), userhandlers.ChannelProfile)

		auth := users.Group("", authfunc.Auth()...)
		auth.POST("/logout", userhandlers.Logout)
		auth.POST("/change-password", userhandlers.ChangePassword)
		auth.GET("/current-user", userhandlers.CurrentUser)
		auth.PATCH("/update-account", userhandlers.UpdateAccount)
		auth.PATCH("/avatar", userhandlers.UpdateAvatar)
		auth.PATCH("/cover-image", userhandlers.UpdateCover)
		auth.GET("/history", userhandlers.WatchHistory)
	}

	videos := v1.Group("/videos")
	{
		videos.GET("", authfunc.OptionalAuthFunc(), videohandlers.VideoList)
		videos.GET("/:video_id", authfunc.OptionalAuthFunc(), videohandlers.GetVideo)

		auth := videos.Group("", authfunc.Auth()...)
		auth.POST("/publish", videohandlers.Publish)
		auth.PATCH("/:video_id", videohandlers.UpdateVideo)
		auth.DELETE("/:video_id", videohandlers.DeleteVideo)
		auth.PATCH("/toggle/publish/:video_id", videohandlers.TogglePublish)
	}

	comments := v1.Group("/comments")
	{
		comments.GET("/:video_id", authfunc.OptionalAuthFunc(), interactionhandlers.ListComments)

		auth := comments.Group("", authfunc.Auth()...)
		auth.POST("/:video_id", interactionhandlers.CreateComment)
		auth.PATCH("/c/:comment_id", interactionhandlers.UpdateComment)
		auth.DELETE("/c/:comment_id", interactionhandlers.DeleteComment)
	}

	likes := v1.Group("/likes", authfunc.Auth()...)
	{
		likes.POST("/toggle/v/:video_id", interactionhandlers.ToggleVideoLike)
		likes.POST("/toggle/c/:comment_id", interactionhandlers.ToggleCommentLike)
		likes.POST("/toggle/t/:tweet_id", interactionhandlers.ToggleTweetLike)
		likes.GET("/videos", interactionhandlers.LikedVideos)
	}

	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channel_id", append(authfunc.Auth(), relationhandlers.ToggleSubscription)...)
		subscriptions.GET("/c/:channel_id", relationhandlers.ChannelSubscribers)
		subscriptions.GET("/u/:subscriber_id", relationhandlers.SubscribedChannels)
	}

	playlist := v1.Group("/playlist")
	{
		playlist.GET("/user/:user_id", playlisthandlers.UserPlaylists)
		playlist.GET("/:playlist_id", authfunc.OptionalAuthFunc(), playlisthandlers.GetPlaylist)

		auth := playlist.Group("", authfunc.Auth()...)
		auth.POST("", playlisthandlers.CreatePlaylist)
		auth.PATCH("/:playlist_id", playlisthandlers.UpdatePlaylist)
		auth.DELETE("/:playlist_id", playlisthandlers.DeletePlaylist)
		auth.PATCH("/add/:video_id/:playlist_id", playlisthandlers.AddVideo)
		auth.PATCH("/remove/:video_id/:playlist_id", playlisthandlers.RemoveVideo)
	}

	tweets := v1.Group("/tweets")
	{
		tweets.GET("/user/:user_id", authfunc.OptionalAuthFunc(), tweethandlers.UserTweets)

		auth := tweets.Group("", authfunc.Auth()...)
		auth.POST("", tweethandlers.CreateTweet)
		auth.PATCH("/:tweet_id", tweethandlers.UpdateTweet)
		auth.DELETE("/:tweet_id", tweethandlers.DeleteTweet)
	}

	dashboard := v1.Group("/dashboard", authfunc.Auth()...)
	{
		dashboard.GET("/stats", videohandlers.DashboardStats)
		dashboard.GET("/videos", videohandlers.DashboardVideos)
	}

	v1.POST("/autocomplete-search", videohandlers.AutocompleteSearch)
}
