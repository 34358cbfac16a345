package db

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertComment(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now().Format(constants.DataFormate)
	comment.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "insert comment failed,err:%v", err)
	}
	return nil
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	err := DB.WithContext(ctx).Where("comment_id = ?", commentId).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.RecordNotFoundErr.WithMessage("comment not found")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query comment failed,err:%v", err)
	}
	return &comment, nil
}

// QueryCommentsByVideo 某视频下的评论 新的排前面
func QueryCommentsByVideo(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	total, err := query.New(DB.WithContext(ctx), &model.Comment{}).
		Filter("video_id = ?", videoId).
		Paginate(pageNum, pageSize).
		Find(ctx, &comments)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "query comments failed,err:%v", err)
	}
	return comments, total, nil
}

func UpdateComment(ctx context.Context, commentId int64, content string) error {
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		}).Error
	if err != nil {
		return errors.Wrapf(err, "update comment failed,err:%v", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "delete comment failed,err:%v", err)
	}
	return nil
}

// DeleteCommentsByVideo 视频删除时级联清理其全部评论
func DeleteCommentsByVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "delete comments of video failed,err:%v", err)
	}
	return nil
}
