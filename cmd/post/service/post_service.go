package service

import (
	"context"
	"strings"

	"playtube.com/cmd/interaction/service"
	"playtube.com/cmd/model"
	"playtube.com/cmd/post/dal/db"
	userdb "playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/cache"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/guard"
	"playtube.com/pkg/utils"
)

type PostService struct {
	ctx context.Context
}

func NewPostService(ctx context.Context) *PostService {
	return &PostService{ctx: ctx}
}

func validatePostContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.RequestErr.WithMessage("Content is required")
	}
	if len(content) > constants.MaxPostLength {
		return "", errno.RequestErr.WithMessage("Content is too long")
	}
	return content, nil
}

func (s *PostService) Create(ctx context.Context, viewerId int64, content string) (*model.Post, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	content, err := validatePostContent(content)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		PostId:  utils.GenID(),
		UserId:  viewerId,
		Content: content,
	}
	if err := db.InsertPost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// PostInfo is the listing shape: the post, its author and the viewer's
// engagement with it.
type PostInfo struct {
	*model.Post
	Owner      model.UserBrief    `json:"owner"`
	Engagement service.Engagement `json:"engagement"`
	IsOwner    bool               `json:"is_owner"`
}

func (s *PostService) buildInfos(ctx context.Context, posts []*model.Post, viewerId int64) ([]*PostInfo, error) {
	postIds := make([]int64, 0, len(posts))
	ownerIds := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIds = append(postIds, post.PostId)
		ownerIds = append(ownerIds, post.UserId)
	}
	briefs, err := userdb.GetUserBriefs(ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	summaries, err := service.Summaries(ctx, constants.TargetPost, postIds, viewerId)
	if err != nil {
		return nil, err
	}

	infos := make([]*PostInfo, 0, len(posts))
	for _, post := range posts {
		infos = append(infos, &PostInfo{
			Post:       post,
			Owner:      briefs[post.UserId],
			Engagement: summaries[post.PostId],
			IsOwner:    guard.IsOwner(post.UserId, viewerId),
		})
	}
	return infos, nil
}

type PostList struct {
	Posts    []*PostInfo    `json:"posts"`
	PageInfo utils.PageInfo `json:"paging_info"`
}

func (s *PostService) UserPosts(ctx context.Context, userId, viewerId, pageNum, pageSize int64) (*PostList, error) {
	owner, err := userdb.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}

	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	posts, total, err := db.ListPostsByUser(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	infos, err := s.buildInfos(ctx, posts, viewerId)
	if err != nil {
		return nil, err
	}
	return &PostList{Posts: infos, PageInfo: utils.NewPageInfo(pageNum, pageSize, total)}, nil
}

// Feed pages over every user's posts, newest first.
func (s *PostService) Feed(ctx context.Context, viewerId, pageNum, pageSize int64) (*PostList, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	posts, total, err := db.ListAllPosts(ctx, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	infos, err := s.buildInfos(ctx, posts, viewerId)
	if err != nil {
		return nil, err
	}
	return &PostList{Posts: infos, PageInfo: utils.NewPageInfo(pageNum, pageSize, total)}, nil
}

func (s *PostService) ownedPost(ctx context.Context, viewerId, postId int64) (*model.Post, error) {
	post, err := db.FindPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errno.NotFoundErr.WithMessage("Post not found")
	}
	if err := guard.Mutation(post.UserId, viewerId); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, viewerId, postId int64, content string) (*model.Post, error) {
	post, err := s.ownedPost(ctx, viewerId, postId)
	if err != nil {
		return nil, err
	}
	content, err = validatePostContent(content)
	if err != nil {
		return nil, err
	}
	if err := db.UpdatePostContent(ctx, postId, content); err != nil {
		return nil, err
	}
	post.Content = content
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, viewerId, postId int64) error {
	if _, err := s.ownedPost(ctx, viewerId, postId); err != nil {
		return err
	}
	if err := db.DeletePostCascade(ctx, postId); err != nil {
		return err
	}
	cache.InvalidateEngagementCounts(ctx, constants.TargetPost, postId)
	return nil
}
