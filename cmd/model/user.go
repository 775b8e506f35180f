package model

import "time"

type User struct {
	UserId    int64     `json:"user_id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:64;uniqueIndex"`
	Email     string    `json:"email" gorm:"size:128;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:128"`
	FullName  string    `json:"full_name" gorm:"size:128"`
	AvatarUrl string    `json:"avatar_url" gorm:"size:256"`
	CoverUrl  string    `json:"cover_url" gorm:"size:256"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserBrief is the public owner projection attached to videos, comments and
// posts: enough to render a channel chip, nothing private.
type UserBrief struct {
	UserId    int64  `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

// WatchRecord keeps the watch history as rows instead of an embedded list.
// One row per (user, video); watching again only refreshes WatchedAt, so the
// history stays duplicate free and sorts most-recent first.
type WatchRecord struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	UserId    int64     `json:"user_id" gorm:"uniqueIndex:uk_user_video"`
	VideoId   int64     `json:"video_id" gorm:"uniqueIndex:uk_user_video"`
	WatchedAt time.Time `json:"watched_at" gorm:"index"`
}
