package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func InsertComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "InsertComment failed")
	}
	return nil
}

func FindComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).First(&comment).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "FindComment failed")
	}
	return &comment, nil
}

func ListComments(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListComments count failed")
	}

	var comments []*model.Comment
	err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&comments).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListComments failed")
	}
	return comments, count, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed")
	}
	return nil
}

// DeleteCommentCascade removes the comment together with its like rows.
// The video-delete path and this one apply the same policy, so no like row
// can outlive its comment.
func DeleteCommentCascade(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", "comment", commentId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete comment likes failed")
		}
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete comment failed")
		}
		return nil
	})
}
