package service

import (
	"context"
	"strings"

	"playtube.com/cmd/model"
	"playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

type LoginParam struct {
	Username string // username or email
	Password string
}

type LoginResult struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// Login accepts the username or the email in the same field, the way the
// login form sends it.
func (s *LoginUserService) Login(ctx context.Context, param *LoginParam) (*LoginResult, error) {
	handle := strings.TrimSpace(strings.ToLower(param.Username))
	if handle == "" || param.Password == "" {
		return nil, errno.RequestErr.WithMessage("Username and password are required")
	}

	var user *model.User
	var err error
	if strings.Contains(handle, "@") {
		user, err = db.GetUserByEmail(ctx, handle)
	} else {
		user, err = db.GetUserByUsername(ctx, handle)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User does not exist")
	}
	if !utils.VerifyPassword(param.Password, user.Password) {
		return nil, errno.TokenInvailedErr.WithMessage("Invalid user credentials")
	}

	access, refresh, err := jwt.GenerateTokenPair(user.UserId)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
