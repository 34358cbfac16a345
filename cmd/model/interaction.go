package model

type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	UserId    int64  `gorm:"column:user_id" json:"user_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt string `gorm:"column:deleted_at" json:"-"`
}

func (c *Comment) TableName() string {
	return "comments"
}

// Like 点赞行 video_id/comment_id/tweet_id三者有且仅有一个非零
// 复合唯一索引保证同一用户对同一目标最多存在一行
type Like struct {
	LikeId    int64  `gorm:"column:like_id;primaryKey" json:"like_id"`
	UserId    int64  `gorm:"column:user_id;uniqueIndex:uk_user_target" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;uniqueIndex:uk_user_target" json:"video_id"`
	CommentId int64  `gorm:"column:comment_id;uniqueIndex:uk_user_target" json:"comment_id"`
	TweetId   int64  `gorm:"column:tweet_id;uniqueIndex:uk_user_target" json:"tweet_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (l *Like) TableName() string {
	return "likes"
}
