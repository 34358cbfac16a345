package model

// User 用户实体 Password和RefreshToken永远不出现在响应里
type User struct {
	UserId       int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName     string `gorm:"column:user_name" json:"user_name"`
	FullName     string `gorm:"column:full_name" json:"full_name"`
	Email        string `gorm:"column:email" json:"email"`
	Password     string `gorm:"column:password" json:"-"`
	AvatarUrl    string `gorm:"column:avatar_url" json:"avatar_url"`
	CoverUrl     string `gorm:"column:cover_url" json:"cover_url"`
	RefreshToken string `gorm:"column:refresh_token" json:"-"`
	CreatedAt    string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    string `gorm:"column:deleted_at" json:"-"`
}

func (u *User) TableName() string {
	return "users"
}

// WatchHistory 观看历史 (user_id, video_id)上有唯一索引 重复观看不产生新行
type WatchHistory struct {
	WatchHistoryId int64  `gorm:"column:watch_history_id;primaryKey" json:"watch_history_id"`
	UserId         int64  `gorm:"column:user_id;uniqueIndex:uk_user_video" json:"user_id"`
	VideoId        int64  `gorm:"column:video_id;uniqueIndex:uk_user_video" json:"video_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

func (w *WatchHistory) TableName() string {
	return "watch_histories"
}
