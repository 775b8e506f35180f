package mq

// ViewEvent is published when someone watches a video. The consumer applies
// the view-count increment and, for logged-in viewers, the watch-history
// update, keeping the watch path itself write-free.
type ViewEvent struct {
	UserId    int64  `json:"user_id"` // 0 for anonymous viewers
	VideoId   int64  `json:"video_id"`
	Timestamp int64  `json:"timestamp"`
	EventID   string `json:"event_id"`
}

// LikeEvent notifies about a completed like toggle; used to fan out
// notifications to content owners.
type LikeEvent struct {
	UserId     int64  `json:"user_id"`
	OwnerId    int64  `json:"owner_id"`
	TargetKind string `json:"target_kind"`
	TargetId   int64  `json:"target_id"`
	Liked      bool   `json:"liked"`
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}
