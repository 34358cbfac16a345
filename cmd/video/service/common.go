package service

import (
	"context"

	interactiondb "PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	userdb "PlayTube.com/cmd/user/dal/db"
	"github.com/pkg/errors"
)

// buildVideoInfos 批量拼视图 作者一次查全 点赞数逐条数
// viewerId为0时is_liked恒为false
func buildVideoInfos(ctx context.Context, videos []*model.Video, viewerId int64) ([]*model.VideoInfo, error) {
	if len(videos) == 0 {
		return []*model.VideoInfo{}, nil
	}

	ownerIds := make([]int64, 0, len(videos))
	seen := make(map[int64]struct{}, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.UserId]; !ok {
			seen[v.UserId] = struct{}{}
			ownerIds = append(ownerIds, v.UserId)
		}
	}
	owners, err := userdb.GetUsersByIds(ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "query video owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	infos := make([]*model.VideoInfo, 0, len(videos))
	for _, v := range videos {
		likes, err := interactiondb.CountLikesByVideo(ctx, v.VideoId)
		if err != nil {
			return nil, err
		}
		isLiked := false
		if viewerId > 0 {
			isLiked, err = interactiondb.IsVideoLiked(ctx, viewerId, v.VideoId)
			if err != nil {
				return nil, err
			}
		}
		info := &model.VideoInfo{Video: *v, LikesCount: likes, IsLiked: isLiked}
		if owner, ok := ownerById[v.UserId]; ok {
			info.Author = &model.Author{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
