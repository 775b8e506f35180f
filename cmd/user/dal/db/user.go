package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed")
	}
	return nil
}

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetUserById failed")
	}
	return &user, nil
}

func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetUserByUsername failed")
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetUserByEmail failed")
	}
	return &user, nil
}

func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	var users []*model.User
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsersByIds failed")
	}
	return users, nil
}

// GetUserBriefs fetches the public projection for a set of users, keyed by id.
func GetUserBriefs(ctx context.Context, userIds []int64) (map[int64]model.UserBrief, error) {
	briefs := make(map[int64]model.UserBrief, len(userIds))
	if len(userIds) == 0 {
		return briefs, nil
	}
	var users []*model.User
	err := DB.WithContext(ctx).Model(&model.User{}).
		Select("user_id, username, full_name, avatar_url").
		Where("user_id IN (?)", userIds).Find(&users).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetUserBriefs failed")
	}
	for _, user := range users {
		briefs[user.UserId] = model.UserBrief{
			UserId:    user.UserId,
			Username:  user.Username,
			FullName:  user.FullName,
			AvatarUrl: user.AvatarUrl,
		}
	}
	return briefs, nil
}

// CheckUserExists reports whether the username or email is already taken.
func CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "CheckUserExists failed")
	}
	return count > 0, nil
}

func UpdateUser(ctx context.Context, userId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed")
	}
	return nil
}

// TouchWatchRecord moves the video to the front of the user's history:
// remove any existing row, then insert a fresh one, so each video appears at
// most once and the history sorts by last watch.
func TouchWatchRecord(ctx context.Context, record *model.WatchRecord) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND video_id = ?", record.UserId, record.VideoId).
			Delete(&model.WatchRecord{}).Error; err != nil {
			return errors.Wrapf(err, "TouchWatchRecord delete failed")
		}
		if record.WatchedAt.IsZero() {
			record.WatchedAt = time.Now()
		}
		if err := tx.Create(record).Error; err != nil {
			return errors.Wrapf(err, "TouchWatchRecord insert failed")
		}
		return nil
	})
}

func GetWatchHistory(ctx context.Context, userId int64) ([]*model.Video, error) {
	var videos []*model.Video
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Joins("JOIN watch_records ON watch_records.video_id = videos.video_id").
		Where("watch_records.user_id = ?", userId).
		Order("watch_records.watched_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetWatchHistory failed")
	}
	return videos, nil
}

func ClearWatchHistory(ctx context.Context, userId int64) error {
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Delete(&model.WatchRecord{}).Error; err != nil {
		return errors.Wrapf(err, "ClearWatchHistory failed")
	}
	return nil
}
