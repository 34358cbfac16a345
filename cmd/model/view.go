package model

// 视图模型 把主实体和关联集合里算出来的字段拼在一起返回给前端

// Author 视频/评论里内嵌的作者信息
type Author struct {
	UserId           int64  `json:"user_id"`
	UserName         string `json:"user_name"`
	FullName         string `json:"full_name,omitempty"`
	AvatarUrl        string `json:"avatar_url"`
	SubscribersCount int64  `json:"subscribers_count,omitempty"`
	IsSubscribed     bool   `json:"is_subscribed,omitempty"`
}

type VideoInfo struct {
	Video
	LikesCount int64   `json:"likes_count"`
	IsLiked    bool    `json:"is_liked"`
	Author     *Author `json:"author,omitempty"`
}

type CommentInfo struct {
	Comment
	LikesCount int64   `json:"likes_count"`
	IsLiked    bool    `json:"is_liked"`
	Author     *Author `json:"author,omitempty"`
}

type TweetInfo struct {
	Tweet
	LikesCount int64   `json:"likes_count"`
	IsLiked    bool    `json:"is_liked"`
	Author     *Author `json:"author,omitempty"`
}

// ChannelProfile 频道主页 订阅数等字段都是相对请求者算出来的
type ChannelProfile struct {
	UserId                    int64  `json:"user_id"`
	UserName                  string `json:"user_name"`
	FullName                  string `json:"full_name"`
	Email                     string `json:"email"`
	AvatarUrl                 string `json:"avatar_url"`
	CoverUrl                  string `json:"cover_url"`
	SubscribersCount          int64  `json:"subscribers_count"`
	ChannelsSubscribedToCount int64  `json:"channels_subscribed_to_count"`
	IsSubscribed              bool   `json:"is_subscribed"`
	CreatedAt                 string `json:"created_at"`
}

type PlaylistInfo struct {
	Playlist
	Videos []*VideoInfo `json:"videos"`
}

type DashboardStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

// SearchSuggestion 自动补全的单条结果
type SearchSuggestion struct {
	VideoId  int64  `json:"video_id"`
	Title    string `json:"title"`
	CoverUrl string `json:"cover_url"`
}
