package service

import (
	"context"
	"strings"

	"playtube.com/cmd/model"
	"playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

type UpdateAccountParam struct {
	ViewerId int64
	FullName string
	Email    string
}

func (s *UpdateUserService) UpdateAccount(ctx context.Context, param *UpdateAccountParam) (*model.User, error) {
	if param.ViewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	fullName := strings.TrimSpace(param.FullName)
	email := strings.TrimSpace(strings.ToLower(param.Email))
	if fullName == "" || email == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}

	existing, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.UserId != param.ViewerId {
		return nil, errno.ConflictErr.WithMessage("Email already in use")
	}

	if err := db.UpdateUser(ctx, param.ViewerId, map[string]interface{}{
		"full_name": fullName,
		"email":     email,
	}); err != nil {
		return nil, err
	}
	return db.GetUserById(ctx, param.ViewerId)
}

func (s *UpdateUserService) ChangePassword(ctx context.Context, viewerId int64, oldPassword, newPassword string) error {
	if viewerId == 0 {
		return errno.TokenInvailedErr
	}
	if len(newPassword) < 6 {
		return errno.RequestErr.WithMessage("Password must be at least 6 characters")
	}
	user, err := db.GetUserById(ctx, viewerId)
	if err != nil {
		return err
	}
	if user == nil {
		return errno.NotFoundErr.WithMessage("User does not exist")
	}
	if !utils.VerifyPassword(oldPassword, user.Password) {
		return errno.RequestErr.WithMessage("Invalid old password")
	}
	hashed, err := utils.Crypt(newPassword)
	if err != nil {
		return err
	}
	return db.UpdateUser(ctx, viewerId, map[string]interface{}{"password": hashed})
}
