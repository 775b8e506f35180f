package service

import (
	"context"
	"strings"

	"playtube.com/cmd/interaction/dal/db"
	"playtube.com/cmd/model"
	userdb "playtube.com/cmd/user/dal/db"
	videodb "playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/cache"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/guard"
	"playtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func ownerBriefs(ctx context.Context, userIds []int64) (map[int64]model.UserBrief, error) {
	return userdb.GetUserBriefs(ctx, userIds)
}

func validateCommentContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errno.RequestErr.WithMessage("Comment content cannot be empty")
	}
	if len(content) > constants.MaxCommentLength {
		return errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

func (s *CommentService) AddComment(ctx context.Context, viewerId, videoId int64, content string) (*model.Comment, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	video, err := videodb.FindVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("No video found")
	}

	comment := &model.Comment{
		CommentId: utils.GenID(),
		UserId:    viewerId,
		VideoId:   videoId,
		Content:   strings.TrimSpace(content),
	}
	if err := db.InsertComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

type CommentInfo struct {
	*model.Comment
	Owner model.UserBrief `json:"owner"`
	Engagement
	IsOwner bool `json:"is_owner"`
}

type CommentList struct {
	Comments []*CommentInfo `json:"comments"`
	PageInfo utils.PageInfo `json:"paging_info"`
}

// ListComments pages a video's comments newest first and attaches the
// engagement summary for each, viewer-relative when a viewer is known.
func (s *CommentService) ListComments(ctx context.Context, viewerId, videoId, pageNum, pageSize int64) (*CommentList, error) {
	video, err := videodb.FindVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("No video found")
	}

	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	comments, total, err := db.ListComments(ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	commentIds := make([]int64, 0, len(comments))
	ownerIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		commentIds = append(commentIds, comment.CommentId)
		ownerIds = append(ownerIds, comment.UserId)
	}

	summaries, err := Summaries(ctx, constants.TargetComment, commentIds, viewerId)
	if err != nil {
		return nil, err
	}
	briefs, err := ownerBriefs(ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	infos := make([]*CommentInfo, 0, len(comments))
	for _, comment := range comments {
		infos = append(infos, &CommentInfo{
			Comment:    comment,
			Owner:      briefs[comment.UserId],
			Engagement: summaries[comment.CommentId],
			IsOwner:    guard.IsOwner(comment.UserId, viewerId),
		})
	}
	return &CommentList{
		Comments: infos,
		PageInfo: utils.NewPageInfo(pageNum, pageSize, total),
	}, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, viewerId, commentId int64, content string) (*model.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, err := db.FindComment(ctx, commentId)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("No comment found")
	}
	if err := guard.Mutation(comment.UserId, viewerId); err != nil {
		return nil, err
	}
	if err := db.UpdateCommentContent(ctx, commentId, strings.TrimSpace(content)); err != nil {
		return nil, err
	}
	comment.Content = strings.TrimSpace(content)
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, viewerId, commentId int64) error {
	comment, err := db.FindComment(ctx, commentId)
	if err != nil {
		return err
	}
	if comment == nil {
		return errno.NotFoundErr.WithMessage("No comment found")
	}
	if err := guard.Mutation(comment.UserId, viewerId); err != nil {
		return err
	}
	if err := db.DeleteCommentCascade(ctx, commentId); err != nil {
		return err
	}
	cache.InvalidateEngagementCounts(ctx, constants.TargetComment, commentId)
	return nil
}
