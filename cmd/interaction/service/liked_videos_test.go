package service

import (
	"testing"

	"playtube.com/cmd/model"
)

func TestAssembleLikedVideos(t *testing.T) {
	videoIds := []int64{3, 1, 2, 9}
	videos := []*model.Video{
		{VideoId: 1, UserId: 10, IsPublished: true},
		{VideoId: 2, UserId: 11, IsPublished: false},
		{VideoId: 3, UserId: 10, IsPublished: true},
	}
	briefs := map[int64]model.UserBrief{
		10: {UserId: 10, Username: "alice"},
		11: {UserId: 11, Username: "bob"},
	}

	got := assembleLikedVideos(videoIds, videos, briefs)

	// 2 is unpublished, 9 was deleted; the rest keep like order
	want := []int64{3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %d videos, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].VideoId != id {
			t.Errorf("position %d: got video %d, want %d", i, got[i].VideoId, id)
		}
	}
	if got[0].Owner.Username != "alice" {
		t.Errorf("owner brief not attached, got %q", got[0].Owner.Username)
	}
}
