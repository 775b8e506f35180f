package service

import (
	"context"
	"strings"

	"playtube.com/cmd/model"
	"playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type RegisterParam struct {
	Username string
	Email    string
	Password string
	FullName string
}

func (s *CreateUserService) Register(ctx context.Context, param *RegisterParam) (*model.User, error) {
	username := strings.TrimSpace(strings.ToLower(param.Username))
	email := strings.TrimSpace(strings.ToLower(param.Email))
	if username == "" || email == "" || param.Password == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}
	if !strings.Contains(email, "@") {
		return nil, errno.RequestErr.WithMessage("Invalid email")
	}
	if len(param.Password) < 6 {
		return nil, errno.RequestErr.WithMessage("Password must be at least 6 characters")
	}

	exists, err := db.CheckUserExists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errno.ConflictErr.WithMessage("User with email or username already exists")
	}

	hashed, err := utils.Crypt(param.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UserId:   utils.GenID(),
		Username: username,
		Email:    email,
		Password: hashed,
		FullName: strings.TrimSpace(param.FullName),
	}
	if err := db.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
