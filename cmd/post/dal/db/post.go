package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func InsertPost(ctx context.Context, post *model.Post) error {
	if err := DB.WithContext(ctx).Create(post).Error; err != nil {
		return errors.Wrapf(err, "InsertPost failed")
	}
	return nil
}

func FindPost(ctx context.Context, postId int64) (*model.Post, error) {
	var post model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", postId).First(&post).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "FindPost failed")
	}
	return &post, nil
}

func ListPostsByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Post, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Post{}).Where("user_id = ?", userId)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPostsByUser count failed")
	}

	var posts []*model.Post
	err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListPostsByUser failed")
	}
	return posts, count, nil
}

func ListAllPosts(ctx context.Context, pageNum, pageSize int64) ([]*model.Post, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllPosts count failed")
	}

	var posts []*model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllPosts failed")
	}
	return posts, count, nil
}

func UpdatePostContent(ctx context.Context, postId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", postId).Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdatePostContent failed")
	}
	return nil
}

// DeletePostCascade removes the post together with its like rows.
func DeletePostCascade(ctx context.Context, postId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", "post", postId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete post likes failed")
		}
		if err := tx.Where("post_id = ?", postId).Delete(&model.Post{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete post failed")
		}
		return nil
	})
}
