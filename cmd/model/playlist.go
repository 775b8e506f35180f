package model

import "time"

type Playlist struct {
	PlaylistId  int64     `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	Name        string    `json:"name" gorm:"size:128"`
	Description string    `json:"description" gorm:"size:512"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaylistVideo is the membership row; the unique index keeps a video from
// appearing twice in the same playlist.
type PlaylistVideo struct {
	Id         int64     `json:"id" gorm:"primaryKey"`
	PlaylistId int64     `json:"playlist_id" gorm:"uniqueIndex:uk_playlist_video"`
	VideoId    int64     `json:"video_id" gorm:"uniqueIndex:uk_playlist_video"`
	CreatedAt  time.Time `json:"created_at"`
}
