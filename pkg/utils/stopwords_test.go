package utils

import (
	"reflect"
	"testing"
)

func TestSearchTokens(t *testing.T) {
	t.Run("DropsStopWords", func(t *testing.T) {
		got := SearchTokens("How to Cook the Perfect Pasta")
		want := []string{"cook", "perfect", "pasta"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SearchTokens = %v, want %v", got, want)
		}
	})
	t.Run("AllStopWords", func(t *testing.T) {
		if got := SearchTokens("how to be the most"); len(got) != 0 {
			t.Errorf("SearchTokens = %v, want empty", got)
		}
	})
	t.Run("CollapsesWhitespace", func(t *testing.T) {
		got := SearchTokens("  golang   tutorial  ")
		want := []string{"golang", "tutorial"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SearchTokens = %v, want %v", got, want)
		}
	})
}

func TestMatchTokenCount(t *testing.T) {
	tokens := SearchTokens("cook perfect pasta")
	cases := []struct {
		name string
		text string
		want int
	}{
		{"AllMatch", "Cook the perfect pasta tonight", 3},
		{"WholeWordsOnly", "pastafarian cooking perfection", 0},
		{"PartialMatch", "pasta for beginners", 1},
		{"Empty", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MatchTokenCount(tokens, c.text); got != c.want {
				t.Errorf("MatchTokenCount(%v, %q) = %d, want %d", tokens, c.text, got, c.want)
			}
		})
	}
}
