package model

import "time"

// Post is a short text-only publication on a user's channel page.
type Post struct {
	PostId    int64     `json:"post_id" gorm:"primaryKey"`
	UserId    int64     `json:"user_id" gorm:"index"`
	Content   string    `json:"content" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}
