package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed")
	}
	return nil
}

func FindPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).First(&playlist).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "FindPlaylist failed")
	}
	return &playlist, nil
}

func ListPlaylistsByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).Order("created_at DESC").Find(&playlists).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListPlaylistsByUser failed")
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed")
	}
	return nil
}

// DeletePlaylist removes the playlist and its membership rows together.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrapf(err, "DeletePlaylist memberships failed")
		}
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
			return errors.Wrapf(err, "DeletePlaylist failed")
		}
		return nil
	})
}

// HasVideo reports whether the video is already in the playlist.
func HasVideo(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "HasVideo failed")
	}
	return count > 0, nil
}

func AddVideo(ctx context.Context, membership *model.PlaylistVideo) error {
	if err := DB.WithContext(ctx).Create(membership).Error; err != nil {
		return errors.Wrapf(err, "AddVideo failed")
	}
	return nil
}

func RemoveVideo(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemoveVideo failed")
	}
	return nil
}

// PlaylistVideoIds preserves insertion order.
func PlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	var videoIds []int64
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("created_at ASC").
		Pluck("video_id", &videoIds).Error
	if err != nil {
		return nil, errors.Wrapf(err, "PlaylistVideoIds failed")
	}
	return videoIds, nil
}

// PlaylistVideoIdsBatch fetches memberships for several playlists at once.
func PlaylistVideoIdsBatch(ctx context.Context, playlistIds []int64) (map[int64][]int64, error) {
	memberships := make(map[int64][]int64, len(playlistIds))
	if len(playlistIds) == 0 {
		return memberships, nil
	}
	var rows []*model.PlaylistVideo
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id IN (?)", playlistIds).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "PlaylistVideoIdsBatch failed")
	}
	for _, row := range rows {
		memberships[row.PlaylistId] = append(memberships[row.PlaylistId], row.VideoId)
	}
	return memberships, nil
}

// PlaylistsContainingVideo lists the user's playlists that hold the video.
func PlaylistsContainingVideo(ctx context.Context, userId, videoId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Joins("JOIN playlist_videos ON playlist_videos.playlist_id = playlists.playlist_id").
		Where("playlists.user_id = ? AND playlist_videos.video_id = ?", userId, videoId).
		Find(&playlists).Error
	if err != nil {
		return nil, errors.Wrapf(err, "PlaylistsContainingVideo failed")
	}
	return playlists, nil
}
