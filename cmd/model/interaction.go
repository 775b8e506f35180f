package model

import "time"

type Comment struct {
	CommentId int64     `json:"comment_id" gorm:"primaryKey"`
	UserId    int64     `json:"user_id" gorm:"index"`
	VideoId   int64     `json:"video_id" gorm:"index"`
	Content   string    `json:"content" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like is one row per (user, target). Liked=true is a like, false a dislike;
// flipping the preference updates the row in place instead of adding a second
// one. TargetKind picks the entity the row refers to.
type Like struct {
	LikeId     int64     `json:"like_id" gorm:"primaryKey"`
	UserId     int64     `json:"user_id" gorm:"uniqueIndex:uk_user_target"`
	TargetKind string    `json:"target_kind" gorm:"size:16;uniqueIndex:uk_user_target"`
	TargetId   int64     `json:"target_id" gorm:"uniqueIndex:uk_user_target;index:idx_target"`
	Liked      bool      `json:"liked"`
	CreatedAt  time.Time `json:"created_at"`
}
