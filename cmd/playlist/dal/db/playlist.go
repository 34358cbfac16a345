package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InsertPlaylist(ctx context.Context, playlist *model.Playlist) error {
	playlist.CreatedAt = time.Now().Format(constants.DataFormate)
	playlist.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "insert playlist failed,err:%v", err)
	}
	return nil
}

func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.RecordNotFoundErr.WithMessage("playlist not found")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query playlist failed,err:%v", err)
	}
	return &playlist, nil
}

// QueryPlaylistsByUser 某用户创建的收藏夹 新的排前面
func QueryPlaylistsByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Playlist, int64, error) {
	var playlists []*model.Playlist
	total, err := query.New(DB.WithContext(ctx), &model.Playlist{}).
		Filter("user_id = ?", userId).
		Paginate(pageNum, pageSize).
		Find(ctx, &playlists)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "query playlists failed,err:%v", err)
	}
	return playlists, total, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, name, description string) error {
	err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"updated_at":  time.Now().Format(constants.DataFormate),
		}).Error
	if err != nil {
		return errors.Wrapf(err, "update playlist failed,err:%v", err)
	}
	return nil
}

// DeletePlaylist 成员行一并清掉
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
		return errors.Wrapf(err, "delete playlist failed,err:%v", err)
	}
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "delete playlist videos failed,err:%v", err)
	}
	return nil
}

// AddVideoToPlaylist 重复加同一个视频是无操作 position取当前最大值加一
func AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	var maxPosition int64
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error
	if err != nil {
		return errors.Wrapf(err, "query playlist position failed,err:%v", err)
	}
	row := &model.PlaylistVideo{
		PlaylistVideoId: utils.NewID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
		Position:        maxPosition + 1,
		CreatedAt:       time.Now().Format(constants.DataFormate),
	}
	err = DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
	if err != nil {
		return errors.Wrapf(err, "add video to playlist failed,err:%v", err)
	}
	return nil
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	err := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
	if err != nil {
		return errors.Wrapf(err, "remove video from playlist failed,err:%v", err)
	}
	return nil
}

// GetPlaylistVideoIds 按加入顺序返回
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	var ids []int64
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("position ASC").
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, errors.Wrapf(err, "query playlist videos failed,err:%v", err)
	}
	return ids, nil
}
