package handlers

import (
	"context"

	"PlayTube.com/cmd/playlist/service"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// CreatePlaylist 建收藏夹 名字和描述都必填
func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(getUserId(c), req.Name, req.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

// GetPlaylist 收藏夹详情 视频按加入顺序展开
func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid playlist id"), nil)
		return
	}
	info, err := service.NewPlaylistService(ctx).GetPlaylistById(playlistId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, info)
}

// UserPlaylists 某用户的收藏夹列表
func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid user id"), nil)
		return
	}
	var req UserPlaylistsParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	playlists, total, err := service.NewPlaylistService(ctx).GetUserPlaylists(userId, req.PageNum, req.PageSize)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, hutils.H{"items": playlists, "total": total})
}

// UpdatePlaylist 只有创建者能改
func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid playlist id"), nil)
		return
	}
	var req PlaylistParam
	if err := c.Bind(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(playlistId, getUserId(c), req.Name, req.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

// DeletePlaylist 只有创建者能删
func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid playlist id"), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(playlistId, getUserId(c)); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}

func membershipParams(c *app.RequestContext) (playlistId, videoId int64, err error) {
	playlistId, err = utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		return 0, 0, err
	}
	videoId, err = utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		return 0, 0, err
	}
	return playlistId, videoId, nil
}

// AddVideo 把视频加进收藏夹 重复加是无操作
func AddVideo(ctx context.Context, c *app.RequestContext) {
	playlistId, videoId, err := membershipParams(c)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid playlist or video id"), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).AddVideo(playlistId, videoId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

// RemoveVideo 把视频从收藏夹移除
func RemoveVideo(ctx context.Context, c *app.RequestContext) {
	playlistId, videoId, err := membershipParams(c)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid playlist or video id"), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).RemoveVideo(playlistId, videoId, getUserId(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}
