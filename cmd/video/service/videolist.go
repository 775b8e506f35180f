package service

import (
	"context"
	"sort"

	"playtube.com/cmd/model"
	userdb "playtube.com/cmd/user/dal/db"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/utils"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

type VideoInfo struct {
	*model.Video
	Owner model.UserBrief `json:"owner"`
}

type VideoList struct {
	Videos   []*VideoInfo   `json:"videos"`
	PageInfo utils.PageInfo `json:"paging_info"`
}

type ListVideosParam struct {
	UserId   int64 // optional owner filter
	Query    string
	SortBy   string // createdAt | views | duration
	Order    string // asc | desc
	PageNum  int64
	PageSize int64
}

// List returns published videos. With a search query the result is ranked by
// how many non-stopword query tokens appear in the title, then in the
// description, newest first among ties; without one it pages straight from
// the store.
func (s *VideoListService) List(ctx context.Context, param *ListVideosParam) (*VideoList, error) {
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)

	tokens := utils.SearchTokens(param.Query)
	if len(tokens) > 0 {
		return s.search(ctx, param.UserId, tokens, pageNum, pageSize)
	}

	videos, total, err := db.ListVideos(ctx, param.UserId, pageNum, pageSize, param.SortBy, param.Order)
	if err != nil {
		return nil, err
	}
	infos, err := attachOwners(ctx, videos)
	if err != nil {
		return nil, err
	}
	return &VideoList{
		Videos:   infos,
		PageInfo: utils.NewPageInfo(pageNum, pageSize, total),
	}, nil
}

// rankVideos orders candidates by whole-word title hits, then description
// hits, then recency. Match count is a sort key, not a filter: zero-match
// candidates stay in, below every match, newest first.
func rankVideos(tokens []string, candidates []*model.Video) []*model.Video {
	type scored struct {
		video      *model.Video
		titleScore int
		descScore  int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, video := range candidates {
		ranked = append(ranked, scored{
			video:      video,
			titleScore: utils.MatchTokenCount(tokens, video.Title),
			descScore:  utils.MatchTokenCount(tokens, video.Description),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].titleScore != ranked[j].titleScore {
			return ranked[i].titleScore > ranked[j].titleScore
		}
		if ranked[i].descScore != ranked[j].descScore {
			return ranked[i].descScore > ranked[j].descScore
		}
		return ranked[i].video.CreatedAt.After(ranked[j].video.CreatedAt)
	})

	result := make([]*model.Video, 0, len(ranked))
	for _, item := range ranked {
		result = append(result, item.video)
	}
	return result
}

func (s *VideoListService) search(ctx context.Context, userId int64, tokens []string, pageNum, pageSize int64) (*VideoList, error) {
	candidates, err := db.SearchCandidates(ctx, userId)
	if err != nil {
		return nil, err
	}
	ranked := rankVideos(tokens, candidates)

	total := int64(len(ranked))
	start := utils.PageOffset(pageNum, pageSize)
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + int(pageSize)
	if end > len(ranked) {
		end = len(ranked)
	}

	infos, err := attachOwners(ctx, ranked[start:end])
	if err != nil {
		return nil, err
	}
	return &VideoList{
		Videos:   infos,
		PageInfo: utils.NewPageInfo(pageNum, pageSize, total),
	}, nil
}

func attachOwners(ctx context.Context, videos []*model.Video) ([]*VideoInfo, error) {
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		ownerIds = append(ownerIds, video.UserId)
	}
	briefs, err := userdb.GetUserBriefs(ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	infos := make([]*VideoInfo, 0, len(videos))
	for _, video := range videos {
		infos = append(infos, &VideoInfo{Video: video, Owner: briefs[video.UserId]})
	}
	return infos, nil
}
