package model

import "time"

// Subscription links a subscriber to a channel (both users). At most one row
// per pair; toggling removes the row. Subscribing to yourself is not blocked
// here, matching the observed behavior of the platform.
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey"`
	ChannelId      int64     `json:"channel_id" gorm:"uniqueIndex:uk_channel_subscriber"`
	SubscriberId   int64     `json:"subscriber_id" gorm:"uniqueIndex:uk_channel_subscriber"`
	CreatedAt      time.Time `json:"created_at"`
}
