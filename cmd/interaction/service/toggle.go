package service

// ToggleAction says what the store mutation for one toggle request is.
type ToggleAction int

const (
	ToggleCreate ToggleAction = iota // no row yet: insert one with the requested stance
	ToggleDelete                     // row already holds the requested stance: remove it
	ToggleFlip                       // row holds the opposite stance: flip it in place
)

// ToggleOutcome is the decided mutation plus the viewer flags that hold once
// it is applied.
type ToggleOutcome struct {
	Action     ToggleAction
	Liked      bool // stance to write for ToggleCreate/ToggleFlip
	IsLiked    bool
	IsDisliked bool
}

// ResolveToggle is the tri-state transition shared by video, comment and
// post likes. States per (viewer, target): no row, row liked, row disliked.
// Requesting the stance the row already holds removes it; requesting the
// opposite flips it; with no row one is created.
func ResolveToggle(hasRow, curLiked, wantLike bool) ToggleOutcome {
	if !hasRow {
		return ToggleOutcome{
			Action:     ToggleCreate,
			Liked:      wantLike,
			IsLiked:    wantLike,
			IsDisliked: !wantLike,
		}
	}
	if curLiked == wantLike {
		return ToggleOutcome{Action: ToggleDelete}
	}
	return ToggleOutcome{
		Action:     ToggleFlip,
		Liked:      wantLike,
		IsLiked:    wantLike,
		IsDisliked: !wantLike,
	}
}
