package model

import "time"

type Video struct {
	VideoId     int64     `json:"video_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	Title       string    `json:"title" gorm:"size:128"`
	Description string    `json:"description" gorm:"size:1024"`
	VideoUrl    string    `json:"video_url" gorm:"size:256"`
	CoverUrl    string    `json:"cover_url" gorm:"size:256"`
	Duration    float64   `json:"duration"`
	VisitCount  int64     `json:"visit_count"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}
