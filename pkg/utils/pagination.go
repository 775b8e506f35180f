package utils

import "playtube.com/pkg/constants"

type PageInfo struct {
	PageNum     int64 `json:"page_num"`
	PageSize    int64 `json:"page_size"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
}

// NormalizePage clamps page number and size into their valid ranges.
func NormalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum < 1 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return pageNum, pageSize
}

func NewPageInfo(pageNum, pageSize, total int64) PageInfo {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return PageInfo{
		PageNum:     pageNum,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: pageNum < totalPages,
	}
}

func PageOffset(pageNum, pageSize int64) int {
	return int((pageNum - 1) * pageSize)
}
