package service

import (
	"context"
	"time"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/playlist/dal/db"
	userdb "PlayTube.com/cmd/user/dal/db"
	videodb "PlayTube.com/cmd/video/dal/db"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("name and description are required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.NewID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().Format(constants.DataFormate),
		UpdatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertPlaylist(s.ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetPlaylistById 收藏夹详情 视频按加入顺序展开 已删视频跳过
func (s *PlaylistService) GetPlaylistById(playlistId, viewerId int64) (*model.PlaylistInfo, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	ids, err := db.GetPlaylistVideoIds(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	info := &model.PlaylistInfo{Playlist: *playlist, Videos: []*model.VideoInfo{}}
	if len(ids) == 0 {
		return info, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, ids)
	if err != nil {
		return nil, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	seen := make(map[int64]struct{}, len(videos))
	for _, v := range videos {
		videoById[v.VideoId] = v
		if _, ok := seen[v.UserId]; !ok {
			seen[v.UserId] = struct{}{}
			ownerIds = append(ownerIds, v.UserId)
		}
	}
	owners, err := userdb.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "query video owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	for _, id := range ids {
		v, ok := videoById[id]
		if !ok {
			continue
		}
		likes, err := interactiondb.CountLikesByVideo(s.ctx, v.VideoId)
		if err != nil {
			return nil, err
		}
		isLiked := false
		if viewerId > 0 {
			isLiked, err = interactiondb.IsVideoLiked(s.ctx, viewerId, v.VideoId)
			if err != nil {
				return nil, err
			}
		}
		videoInfo := &model.VideoInfo{Video: *v, LikesCount: likes, IsLiked: isLiked}
		if owner, ok := ownerById[v.UserId]; ok {
			videoInfo.Author = &model.Author{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			}
		}
		info.Videos = append(info.Videos, videoInfo)
	}
	return info, nil
}

// GetUserPlaylists 某用户创建的收藏夹列表 不展开视频
func (s *PlaylistService) GetUserPlaylists(userId, pageNum, pageSize int64) ([]*model.Playlist, int64, error) {
	if exist, err := userdb.CheckUserExistById(s.ctx, userId); err != nil {
		return nil, 0, err
	} else if !exist {
		return nil, 0, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	pageNum, pageSize = query.NormalizePage(pageNum, pageSize)
	return db.QueryPlaylistsByUser(s.ctx, userId, pageNum, pageSize)
}

// UpdatePlaylist 只有创建者能改
func (s *PlaylistService) UpdatePlaylist(playlistId, userId int64, name, description string) (*model.Playlist, error) {
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("name and description are required")
	}
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserId != userId {
		return nil, errno.ForbiddenErr
	}
	if err := db.UpdatePlaylist(s.ctx, playlistId, name, description); err != nil {
		return nil, err
	}
	return db.GetPlaylist(s.ctx, playlistId)
}

func (s *PlaylistService) DeletePlaylist(playlistId, userId int64) error {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return err
	}
	if playlist.UserId != userId {
		return errno.ForbiddenErr
	}
	return db.DeletePlaylist(s.ctx, playlistId)
}

// AddVideo 收藏夹和视频都要存在 重复加是幂等的
func (s *PlaylistService) AddVideo(playlistId, videoId, userId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserId != userId {
		return nil, errno.ForbiddenErr
	}
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		return nil, err
	}
	if err := db.AddVideoToPlaylist(s.ctx, playlistId, videoId); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) RemoveVideo(playlistId, videoId, userId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserId != userId {
		return nil, errno.ForbiddenErr
	}
	if err := db.RemoveVideoFromPlaylist(s.ctx, playlistId, videoId); err != nil {
		return nil, err
	}
	return playlist, nil
}
