package constants

import "time"

// Like/follow targets share one table; TargetKind selects the column set.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetPost    = "post"
)

const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

const (
	MaxCommentLength = 500
	MaxPostLength    = 500
	MaxTitleLength   = 100
)

const (
	AccessTokenExpire  = 15 * time.Minute
	RefreshTokenExpire = 7 * 24 * time.Hour
)

const (
	ToggleLockExpire = 3 * time.Second
	CounterExpire    = time.Hour
)

const DataFormate = "2006-01-02 15:04:05"
