package utils

import (
	"testing"

	"playtube.com/pkg/constants"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name     string
		pageNum  int64
		pageSize int64
		wantNum  int64
		wantSize int64
	}{
		{"Defaults", 0, 0, constants.DefaultPageNum, constants.DefaultPageSize},
		{"Negative", -3, -1, constants.DefaultPageNum, constants.DefaultPageSize},
		{"ClampsOversize", 2, constants.MaxPageSize + 100, 2, constants.MaxPageSize},
		{"Passthrough", 3, 20, 3, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			num, size := NormalizePage(c.pageNum, c.pageSize)
			if num != c.wantNum || size != c.wantSize {
				t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					c.pageNum, c.pageSize, num, size, c.wantNum, c.wantSize)
			}
		})
	}
}

// 15 records at page size 10 must split into pages of 10 and 5 with no
// overlap and no omission.
func TestPageWindows(t *testing.T) {
	const total, size = 15, 10

	info1 := NewPageInfo(1, size, total)
	if info1.TotalPages != 2 || !info1.HasNextPage {
		t.Fatalf("page 1 info = %+v, want 2 total pages with a next page", info1)
	}
	info2 := NewPageInfo(2, size, total)
	if info2.HasNextPage {
		t.Fatalf("page 2 info = %+v, want no next page", info2)
	}

	seen := map[int]bool{}
	for page := int64(1); page <= info1.TotalPages; page++ {
		offset := PageOffset(page, size)
		end := offset + size
		if end > total {
			end = total
		}
		for i := offset; i < end; i++ {
			if seen[i] {
				t.Fatalf("record %d appears on more than one page", i)
			}
			seen[i] = true
		}
	}
	if len(seen) != total {
		t.Errorf("pages covered %d records, want %d", len(seen), total)
	}
}
