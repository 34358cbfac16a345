package model

type Playlist struct {
	PlaylistId  int64  `gorm:"column:playlist_id;primaryKey" json:"playlist_id"`
	UserId      int64  `gorm:"column:user_id;index" json:"user_id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   string `gorm:"column:deleted_at" json:"-"`
}

func (p *Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 收藏夹中的视频 position维持加入顺序
type PlaylistVideo struct {
	PlaylistVideoId int64  `gorm:"column:playlist_video_id;primaryKey" json:"playlist_video_id"`
	PlaylistId      int64  `gorm:"column:playlist_id;uniqueIndex:uk_playlist_video" json:"playlist_id"`
	VideoId         int64  `gorm:"column:video_id;uniqueIndex:uk_playlist_video" json:"video_id"`
	Position        int64  `gorm:"column:position" json:"position"`
	CreatedAt       string `gorm:"column:created_at" json:"created_at"`
}

func (p *PlaylistVideo) TableName() string {
	return "playlist_videos"
}
