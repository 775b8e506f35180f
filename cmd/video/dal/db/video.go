package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed")
	}
	return nil
}

func FindVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "FindVideo failed")
	}
	return &video, nil
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByIds failed")
	}
	return videos, nil
}

// ListVideos pages over published videos, optionally restricted to one
// owner, newest first unless sortBy overrides.
func ListVideos(ctx context.Context, userId, pageNum, pageSize int64, sortBy, order string) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)
	if userId != 0 {
		query = query.Where("user_id = ?", userId)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideos count failed")
	}

	sortColumn := "created_at"
	switch sortBy {
	case "views":
		sortColumn = "visit_count"
	case "duration":
		sortColumn = "duration"
	case "createdAt", "":
		sortColumn = "created_at"
	}
	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}

	var videos []*model.Video
	err := query.Order(sortColumn + " " + direction).
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideos failed")
	}
	return videos, count, nil
}

// SearchCandidates returns the newest published videos as the ranking pool
// for a search query. Match scoring happens in the service layer and is a
// sort key there, so nothing is filtered here; the pool is capped at the 500
// most recent rows.
func SearchCandidates(ctx context.Context, userId int64) ([]*model.Video, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)
	if userId != 0 {
		query = query.Where("user_id = ?", userId)
	}

	var videos []*model.Video
	if err := query.Order("created_at DESC").Limit(500).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "SearchCandidates failed")
	}
	return videos, nil
}

func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed")
	}
	return nil
}

func UpdatePublishStatus(ctx context.Context, videoId int64, isPublished bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Update("is_published", isPublished).Error; err != nil {
		return errors.Wrapf(err, "UpdatePublishStatus failed")
	}
	return nil
}

// ListOwnerVideos pages over a channel's own videos, drafts included.
func ListOwnerVideos(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListOwnerVideos count failed")
	}
	var videos []*model.Video
	err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((pageNum - 1) * pageSize)).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListOwnerVideos failed")
	}
	return videos, total, nil
}

// OwnerVideoStats returns the channel's video count and summed views,
// drafts included.
func OwnerVideoStats(ctx context.Context, userId int64) (int64, int64, error) {
	var stats struct {
		Videos int64
		Views  int64
	}
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) AS videos, COALESCE(SUM(visit_count), 0) AS views").
		Where("user_id = ?", userId).Scan(&stats).Error
	if err != nil {
		return 0, 0, errors.Wrapf(err, "OwnerVideoStats failed")
	}
	return stats.Videos, stats.Views, nil
}

// IncrementVisit bumps the view counter in one statement so it can only grow.
func IncrementVisit(ctx context.Context, videoId int64) (int64, error) {
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error
	if err != nil {
		return 0, errors.Wrapf(err, "IncrementVisit failed")
	}
	var count int64
	err = DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Select("visit_count").Scan(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "IncrementVisit read back failed")
	}
	return count, nil
}

// DeleteVideoCascade removes the video and everything referencing it: its
// like rows, its comments, those comments' like rows, playlist memberships
// and watch-history rows. One transaction, so a failure leaves no partial
// cascade behind.
func DeleteVideoCascade(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIds []int64
		if err := tx.Model(&model.Comment{}).Where("video_id = ?", videoId).
			Pluck("comment_id", &commentIds).Error; err != nil {
			return errors.Wrapf(err, "cascade: collect comments failed")
		}

		if len(commentIds) > 0 {
			if err := tx.Where("target_kind = ? AND target_id IN (?)", "comment", commentIds).
				Delete(&model.Like{}).Error; err != nil {
				return errors.Wrapf(err, "cascade: delete comment likes failed")
			}
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", "video", videoId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete video likes failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete comments failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete playlist memberships failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.WatchRecord{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete watch records failed")
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
			return errors.Wrapf(err, "cascade: delete video failed")
		}
		return nil
	})
}
