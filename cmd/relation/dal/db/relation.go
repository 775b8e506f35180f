package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func GetSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetSubscription failed")
	}
	return &sub, nil
}

func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		return errors.Wrapf(err, "CreateSubscription failed")
	}
	return nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) error {
	if err := DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteSubscription failed")
	}
	return nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed")
	}
	return count, nil
}

func CountSubscribedTo(ctx context.Context, subscriberId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountSubscribedTo failed")
	}
	return count, nil
}

// CountSubscribersBatch returns each listed channel's subscriber count in one
// grouped query, for the subscriber/subscription listings.
func CountSubscribersBatch(ctx context.Context, channelIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(channelIds))
	if len(channelIds) == 0 {
		return counts, nil
	}
	var rows []struct {
		ChannelId int64
		Count     int64
	}
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Select("channel_id, COUNT(*) AS count").
		Where("channel_id IN (?)", channelIds).
		Group("channel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "CountSubscribersBatch failed")
	}
	for _, row := range rows {
		counts[row.ChannelId] = row.Count
	}
	return counts, nil
}

// SubscribedAmong reports which of the candidate channels the subscriber
// currently follows.
func SubscribedAmong(ctx context.Context, subscriberId int64, channelIds []int64) (map[int64]bool, error) {
	flags := make(map[int64]bool, len(channelIds))
	if subscriberId == 0 || len(channelIds) == 0 {
		return flags, nil
	}
	var followed []int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id IN (?)", subscriberId, channelIds).
		Pluck("channel_id", &followed).Error
	if err != nil {
		return nil, errors.Wrapf(err, "SubscribedAmong failed")
	}
	for _, id := range followed {
		flags[id] = true
	}
	return flags, nil
}

func ListSubscriberIds(ctx context.Context, channelId int64) ([]int64, error) {
	var subscriberIds []int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at DESC").
		Pluck("subscriber_id", &subscriberIds).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListSubscriberIds failed")
	}
	return subscriberIds, nil
}

func ListSubscribedChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	var channelIds []int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC").
		Pluck("channel_id", &channelIds).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListSubscribedChannelIds failed")
	}
	return channelIds, nil
}
