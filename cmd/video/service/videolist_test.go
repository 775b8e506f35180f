package service

import (
	"testing"
	"time"

	"playtube.com/cmd/model"
	"playtube.com/pkg/utils"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestRankVideos(t *testing.T) {
	tokens := utils.SearchTokens("golang tutorial")
	candidates := []*model.Video{
		{VideoId: 1, Title: "Cooking pasta", Description: "nothing relevant", CreatedAt: day(5)},
		{VideoId: 2, Title: "Golang tutorial for beginners", Description: "", CreatedAt: day(1)},
		{VideoId: 3, Title: "Golang tips", Description: "a short tutorial", CreatedAt: day(2)},
		{VideoId: 4, Title: "Vim basics", Description: "golang tutorial inside", CreatedAt: day(3)},
		{VideoId: 5, Title: "Golangish", Description: "tutorials only", CreatedAt: day(4)},
	}

	ranked := rankVideos(tokens, candidates)

	// matches first by score, then the zero-match tail newest first
	want := []int64{2, 3, 4, 1, 5}
	if len(ranked) != len(want) {
		t.Fatalf("got %d results, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].VideoId != id {
			t.Errorf("position %d: got video %d, want %d", i, ranked[i].VideoId, id)
		}
	}
}

// Equal scores fall back to recency, newest first.
func TestRankVideosTieBreaksOnRecency(t *testing.T) {
	tokens := utils.SearchTokens("golang")
	candidates := []*model.Video{
		{VideoId: 1, Title: "golang weekly", CreatedAt: day(1)},
		{VideoId: 2, Title: "golang daily", CreatedAt: day(9)},
		{VideoId: 3, Title: "golang monthly", CreatedAt: day(4)},
	}

	ranked := rankVideos(tokens, candidates)
	want := []int64{2, 3, 1}
	for i, id := range want {
		if ranked[i].VideoId != id {
			t.Errorf("position %d: got video %d, want %d", i, ranked[i].VideoId, id)
		}
	}
}

// A query matching nothing still returns the whole pool, ranked by recency.
func TestRankVideosKeepsZeroMatches(t *testing.T) {
	tokens := utils.SearchTokens("nonexistentword")
	candidates := []*model.Video{
		{VideoId: 1, Title: "first upload", CreatedAt: day(1)},
		{VideoId: 2, Title: "second upload", CreatedAt: day(2)},
	}

	ranked := rankVideos(tokens, candidates)
	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].VideoId != 2 || ranked[1].VideoId != 1 {
		t.Errorf("got order [%d, %d], want [2, 1]", ranked[0].VideoId, ranked[1].VideoId)
	}
}

func TestRankVideosEmptyTokens(t *testing.T) {
	candidates := []*model.Video{
		{VideoId: 1, Title: "older", CreatedAt: day(1)},
		{VideoId: 2, Title: "newer", CreatedAt: day(2)},
	}
	ranked := rankVideos(nil, candidates)
	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].VideoId != 2 {
		t.Errorf("no tokens should fall back to recency, got video %d first", ranked[0].VideoId)
	}
}
