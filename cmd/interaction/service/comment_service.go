package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/interaction/dal/db"
	"PlayTube.com/cmd/model"
	userdb "PlayTube.com/cmd/user/dal/db"
	videodb "PlayTube.com/cmd/video/dal/db"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// AddComment 给视频加评论 视频必须存在
func (s *CommentService) AddComment(videoId, userId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		CommentId: utils.NewID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertComment(s.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetVideoComments 评论列表带作者和点赞视图 新评论排前面
func (s *CommentService) GetVideoComments(videoId, viewerId, pageNum, pageSize int64) ([]*model.CommentInfo, int64, error) {
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		return nil, 0, err
	}
	pageNum, pageSize = query.NormalizePage(pageNum, pageSize)
	comments, total, err := db.QueryCommentsByVideo(s.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(comments) == 0 {
		return []*model.CommentInfo{}, total, nil
	}

	authorIds := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserId]; !ok {
			seen[c.UserId] = struct{}{}
			authorIds = append(authorIds, c.UserId)
		}
	}
	authors, err := userdb.GetUsersByIds(s.ctx, authorIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "query comment authors failed")
	}
	authorById := make(map[int64]*model.User, len(authors))
	for _, u := range authors {
		authorById[u.UserId] = u
	}

	infos := make([]*model.CommentInfo, 0, len(comments))
	for _, c := range comments {
		likes, err := db.CountLikesByComment(s.ctx, c.CommentId)
		if err != nil {
			return nil, 0, err
		}
		isLiked := false
		if viewerId > 0 {
			isLiked, err = db.IsCommentLiked(s.ctx, viewerId, c.CommentId)
			if err != nil {
				return nil, 0, err
			}
		}
		info := &model.CommentInfo{Comment: *c, LikesCount: likes, IsLiked: isLiked}
		if author, ok := authorById[c.UserId]; ok {
			info.Author = &model.Author{
				UserId:    author.UserId,
				UserName:  author.UserName,
				FullName:  author.FullName,
				AvatarUrl: author.AvatarUrl,
			}
		}
		infos = append(infos, info)
	}
	return infos, total, nil
}

// UpdateComment 只有评论作者能改
func (s *CommentService) UpdateComment(commentId, userId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	comment, err := db.GetComment(s.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if comment.UserId != userId {
		return nil, errno.ForbiddenErr
	}
	if err := db.UpdateComment(s.ctx, commentId, content); err != nil {
		return nil, err
	}
	return db.GetComment(s.ctx, commentId)
}

// DeleteComment 只有评论作者能删 评论上的点赞一并清掉
func (s *CommentService) DeleteComment(commentId, userId int64) error {
	comment, err := db.GetComment(s.ctx, commentId)
	if err != nil {
		return err
	}
	if comment.UserId != userId {
		return errno.ForbiddenErr
	}
	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		return err
	}
	return db.DeleteLikesByComment(s.ctx, commentId)
}
