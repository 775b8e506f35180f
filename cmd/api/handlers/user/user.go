package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/user/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

type RegisterParam struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	FullName string `form:"full_name" json:"full_name"`
}

type LoginParam struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type ChangePasswordParam struct {
	OldPassword string `form:"old_password" json:"old_password"`
	NewPassword string `form:"new_password" json:"new_password"`
}

type UpdateAccountParam struct {
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
}

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewCreateUserService(ctx).Register(ctx, &service.RegisterParam{
		Username: param.Username,
		Email:    param.Email,
		Password: param.Password,
		FullName: param.FullName,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func setTokenCookies(c *app.RequestContext, access, refresh string) {
	c.SetCookie("access_token", access, 0, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.SetCookie("refresh_token", refresh, 0, "/", "", protocol.CookieSameSiteLaxMode, false, true)
}

func clearTokenCookies(c *app.RequestContext) {
	c.SetCookie("access_token", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
}

func Login(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewLoginUserService(ctx).Login(ctx, &service.LoginParam{
		Username: param.Username,
		Password: param.Password,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	setTokenCookies(c, result.AccessToken, result.RefreshToken)
	common.SendResponse(c, errno.Success, result)
}

func Logout(ctx context.Context, c *app.RequestContext) {
	clearTokenCookies(c)
	common.SendMessage(c, "Logged out successfully")
}

// RefreshToken reissues the token pair off a still-valid refresh token.
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsRefreshTokenAvailable(ctx, c) {
		common.SendResponse(c, errno.TokenInvailedErr, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	access, refresh, err := jwt.GenerateTokenPair(viewerId)
	if err != nil {
		hlog.CtxErrorf(ctx, "refresh token: %v", err)
		common.SendResponse(c, errno.ServiceErr, nil)
		return
	}
	setTokenCookies(c, access, refresh)
	common.SendResponse(c, errno.Success, map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var param ChangePasswordParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	err := service.NewUpdateUserService(ctx).ChangePassword(ctx, viewerId, param.OldPassword, param.NewPassword)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Password changed successfully")
}

func CurrentUser(ctx context.Context, c *app.RequestContext) {
	viewerId, _ := jwt.CurrentUserId(c)
	user, err := service.NewGetUserInfoService(ctx).CurrentUser(ctx, viewerId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	var param UpdateAccountParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	user, err := service.NewUpdateUserService(ctx).UpdateAccount(ctx, &service.UpdateAccountParam{
		ViewerId: viewerId,
		FullName: param.FullName,
		Email:    param.Email,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func UploadAvatar(ctx context.Context, c *app.RequestContext) {
	data, contentType, err := common.ReadUpload(c, "avatar")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	user, err := service.NewAvatarUploadService(ctx).UploadAvatar(ctx, viewerId, data, contentType)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func UploadCover(ctx context.Context, c *app.RequestContext) {
	data, contentType, err := common.ReadUpload(c, "cover_image")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	user, err := service.NewAvatarUploadService(ctx).UploadCover(ctx, viewerId, data, contentType)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

// ChannelProfile serves a channel page; the subscribe flag is viewer-relative
// when the request carries a valid token.
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	viewerId, _ := jwt.CurrentUserId(c)
	profile, err := service.NewGetUserInfoService(ctx).ChannelProfile(ctx, viewerId, c.Param("username"))
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, profile)
}

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	viewerId, _ := jwt.CurrentUserId(c)
	entries, err := service.NewWatchHistoryService(ctx).History(ctx, viewerId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, entries)
}

func ClearWatchHistory(ctx context.Context, c *app.RequestContext) {
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewWatchHistoryService(ctx).Clear(ctx, viewerId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Watch history cleared")
}
