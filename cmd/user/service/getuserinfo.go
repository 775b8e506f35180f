package service

import (
	"context"
	"strings"

	"playtube.com/cmd/model"
	relationdb "playtube.com/cmd/relation/dal/db"
	"playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/guard"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) CurrentUser(ctx context.Context, viewerId int64) (*model.User, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	user, err := db.GetUserById(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User does not exist")
	}
	return user, nil
}

type ChannelProfile struct {
	UserId            int64  `json:"user_id"`
	Username          string `json:"username"`
	FullName          string `json:"full_name"`
	AvatarUrl         string `json:"avatar_url"`
	CoverUrl          string `json:"cover_url"`
	SubscribersCount  int64  `json:"subscribers_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
	IsOwner           bool   `json:"is_owner"`
}

// ChannelProfile resolves a channel page by username, with subscriber
// numbers and the viewer's subscribe state when logged in.
func (s *GetUserInfoService) ChannelProfile(ctx context.Context, viewerId int64, username string) (*ChannelProfile, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, errno.RequestErr.WithMessage("Username is required")
	}
	user, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
	}

	subscribers, err := relationdb.CountSubscribers(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := relationdb.CountSubscribedTo(ctx, user.UserId)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerId != 0 {
		sub, err := relationdb.GetSubscription(ctx, viewerId, user.UserId)
		if err != nil {
			return nil, err
		}
		isSubscribed = sub != nil
	}

	return &ChannelProfile{
		UserId:            user.UserId,
		Username:          user.Username,
		FullName:          user.FullName,
		AvatarUrl:         user.AvatarUrl,
		CoverUrl:          user.CoverUrl,
		SubscribersCount:  subscribers,
		SubscribedToCount: subscribedTo,
		IsSubscribed:      isSubscribed,
		IsOwner:           guard.IsOwner(user.UserId, viewerId),
	}, nil
}
