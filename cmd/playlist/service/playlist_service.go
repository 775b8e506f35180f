package service

import (
	"context"
	"strings"

	"playtube.com/cmd/model"
	"playtube.com/cmd/playlist/dal/db"
	userdb "playtube.com/cmd/user/dal/db"
	videodb "playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/guard"
	"playtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) Create(ctx context.Context, viewerId int64, name, description string) (*model.Playlist, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("Name is required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.GenID(),
		UserId:      viewerId,
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := db.CreatePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// PlaylistSummary is the rollup shown on a user's playlists page: size,
// aggregate view count and the first video's thumbnail.
type PlaylistSummary struct {
	*model.Playlist
	TotalVideos int64  `json:"total_videos"`
	TotalViews  int64  `json:"total_views"`
	Thumbnail   string `json:"thumbnail"`
}

func (s *PlaylistService) UserPlaylists(ctx context.Context, userId int64) ([]*PlaylistSummary, error) {
	owner, err := userdb.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}

	playlists, err := db.ListPlaylistsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	playlistIds := make([]int64, 0, len(playlists))
	for _, playlist := range playlists {
		playlistIds = append(playlistIds, playlist.PlaylistId)
	}
	memberships, err := db.PlaylistVideoIdsBatch(ctx, playlistIds)
	if err != nil {
		return nil, err
	}

	allVideoIds := make([]int64, 0)
	for _, videoIds := range memberships {
		allVideoIds = append(allVideoIds, videoIds...)
	}
	videos, err := videodb.GetVideosByIds(ctx, allVideoIds)
	if err != nil {
		return nil, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
	}

	summaries := make([]*PlaylistSummary, 0, len(playlists))
	for _, playlist := range playlists {
		summary := &PlaylistSummary{Playlist: playlist}
		for i, videoId := range memberships[playlist.PlaylistId] {
			video, ok := videoById[videoId]
			if !ok {
				continue
			}
			summary.TotalVideos++
			summary.TotalViews += video.VisitCount
			if i == 0 {
				summary.Thumbnail = video.CoverUrl
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

type PlaylistDetail struct {
	*model.Playlist
	Owner  model.UserBrief `json:"owner"`
	Videos []*model.Video  `json:"videos"`
}

// Detail returns the playlist with its published videos in insertion order.
func (s *PlaylistService) Detail(ctx context.Context, playlistId int64) (*PlaylistDetail, error) {
	playlist, err := db.FindPlaylist(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("Playlist not found")
	}

	videoIds, err := db.PlaylistVideoIds(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videoIds))
	for _, videoId := range videoIds {
		video, ok := videoById[videoId]
		if !ok || !video.IsPublished {
			continue
		}
		ordered = append(ordered, video)
	}

	briefs, err := userdb.GetUserBriefs(ctx, []int64{playlist.UserId})
	if err != nil {
		return nil, err
	}
	return &PlaylistDetail{
		Playlist: playlist,
		Owner:    briefs[playlist.UserId],
		Videos:   ordered,
	}, nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, viewerId, playlistId int64) (*model.Playlist, error) {
	playlist, err := db.FindPlaylist(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("Playlist not found")
	}
	if err := guard.Mutation(playlist.UserId, viewerId); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, viewerId, playlistId int64, name, description string) (*model.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, viewerId, playlistId)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("Name is required")
	}
	if err := db.UpdatePlaylist(ctx, playlistId, map[string]interface{}{
		"name":        name,
		"description": strings.TrimSpace(description),
	}); err != nil {
		return nil, err
	}
	playlist.Name = name
	playlist.Description = strings.TrimSpace(description)
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, viewerId, playlistId int64) error {
	if _, err := s.ownedPlaylist(ctx, viewerId, playlistId); err != nil {
		return err
	}
	return db.DeletePlaylist(ctx, playlistId)
}

// AddVideo appends the video to the playlist; adding one that is already
// there is a conflict and leaves the playlist unchanged.
func (s *PlaylistService) AddVideo(ctx context.Context, viewerId, playlistId, videoId int64) error {
	if _, err := s.ownedPlaylist(ctx, viewerId, playlistId); err != nil {
		return err
	}
	video, err := videodb.FindVideo(ctx, videoId)
	if err != nil {
		return err
	}
	if video == nil {
		return errno.NotFoundErr.WithMessage("Video not found")
	}

	exists, err := db.HasVideo(ctx, playlistId, videoId)
	if err != nil {
		return err
	}
	if exists {
		return errno.ConflictErr.WithMessage("Video already in playlist")
	}
	return db.AddVideo(ctx, &model.PlaylistVideo{
		Id:         utils.GenID(),
		PlaylistId: playlistId,
		VideoId:    videoId,
	})
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, viewerId, playlistId, videoId int64) error {
	if _, err := s.ownedPlaylist(ctx, viewerId, playlistId); err != nil {
		return err
	}
	exists, err := db.HasVideo(ctx, playlistId, videoId)
	if err != nil {
		return err
	}
	if !exists {
		return errno.NotFoundErr.WithMessage("Video not in playlist")
	}
	return db.RemoveVideo(ctx, playlistId, videoId)
}

// ContainingVideo lists the viewer's playlists that already hold the video,
// for the save dialog.
func (s *PlaylistService) ContainingVideo(ctx context.Context, viewerId, videoId int64) ([]*model.Playlist, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	return db.PlaylistsContainingVideo(ctx, viewerId, videoId)
}
