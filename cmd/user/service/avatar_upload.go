package service

import (
	"context"

	"playtube.com/cmd/model"
	"playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/oss"
)

type AvatarUploadService struct {
	ctx context.Context
}

func NewAvatarUploadService(ctx context.Context) *AvatarUploadService {
	return &AvatarUploadService{ctx: ctx}
}

func (s *AvatarUploadService) uploadImage(ctx context.Context, viewerId int64, data []byte, kind, contentType, column string) (*model.User, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	if len(data) == 0 {
		return nil, errno.RequestErr.WithMessage("Image file not found")
	}
	url, err := oss.UploadUserImage(ctx, data, viewerId, kind, contentType)
	if err != nil {
		return nil, errno.UpstreamErr.WithMessage("Error while uploading image")
	}
	if err := db.UpdateUser(ctx, viewerId, map[string]interface{}{column: url}); err != nil {
		return nil, err
	}
	return db.GetUserById(ctx, viewerId)
}

// UploadAvatar replaces the user's avatar; the previous object is removed by
// the storage layer before the new one lands.
func (s *AvatarUploadService) UploadAvatar(ctx context.Context, viewerId int64, data []byte, contentType string) (*model.User, error) {
	return s.uploadImage(ctx, viewerId, data, "avatar", contentType, "avatar_url")
}

func (s *AvatarUploadService) UploadCover(ctx context.Context, viewerId int64, data []byte, contentType string) (*model.User, error) {
	return s.uploadImage(ctx, viewerId, data, "cover", contentType, "cover_url")
}
