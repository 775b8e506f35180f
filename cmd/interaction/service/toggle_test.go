package service

import "testing"

func TestResolveToggle(t *testing.T) {
	cases := []struct {
		name     string
		hasRow   bool
		curLiked bool
		wantLike bool
		want     ToggleOutcome
	}{
		{
			name:     "NoRowLike",
			hasRow:   false,
			wantLike: true,
			want:     ToggleOutcome{Action: ToggleCreate, Liked: true, IsLiked: true, IsDisliked: false},
		},
		{
			name:     "NoRowDislike",
			hasRow:   false,
			wantLike: false,
			want:     ToggleOutcome{Action: ToggleCreate, Liked: false, IsLiked: false, IsDisliked: true},
		},
		{
			name:     "LikedAgainRemoves",
			hasRow:   true,
			curLiked: true,
			wantLike: true,
			want:     ToggleOutcome{Action: ToggleDelete},
		},
		{
			name:     "DislikedAgainRemoves",
			hasRow:   true,
			curLiked: false,
			wantLike: false,
			want:     ToggleOutcome{Action: ToggleDelete},
		},
		{
			name:     "LikedToDislikeFlips",
			hasRow:   true,
			curLiked: true,
			wantLike: false,
			want:     ToggleOutcome{Action: ToggleFlip, Liked: false, IsLiked: false, IsDisliked: true},
		},
		{
			name:     "DislikedToLikeFlips",
			hasRow:   true,
			curLiked: false,
			wantLike: true,
			want:     ToggleOutcome{Action: ToggleFlip, Liked: true, IsLiked: true, IsDisliked: false},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveToggle(c.hasRow, c.curLiked, c.wantLike)
			if got != c.want {
				t.Errorf("ResolveToggle(%v, %v, %v) = %+v, want %+v",
					c.hasRow, c.curLiked, c.wantLike, got, c.want)
			}
		})
	}
}

// A like followed by the same like must land back on the no-row state, for
// any starting stance.
func TestToggleTwiceReturnsToStart(t *testing.T) {
	for _, wantLike := range []bool{true, false} {
		first := ResolveToggle(false, false, wantLike)
		if first.Action != ToggleCreate {
			t.Fatalf("first toggle: got action %v, want ToggleCreate", first.Action)
		}
		second := ResolveToggle(true, first.Liked, wantLike)
		if second.Action != ToggleDelete {
			t.Errorf("second toggle(wantLike=%v): got action %v, want ToggleDelete", wantLike, second.Action)
		}
	}
}
