package post

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

// DraftInput is what a create call carries. Status defaults to Draft and
// ScheduledDate to the creation time when omitted.
type DraftInput struct {
	Platform      common.Platform
	Objective     common.Objective
	Topic         string
	Content       common.GeneratedContent
	Status        common.PostStatus
	ScheduledDate time.Time
}

type PostService interface {
	CreatePost(ctx context.Context, accountID uint64, input DraftInput) (*dbmysql.Post, error)
	ListPosts(ctx context.Context, accountID uint64) ([]dbmysql.Post, error)
	SetStatus(ctx context.Context, postID string, accountID uint64, status common.PostStatus) error
	SetMetrics(ctx context.Context, postID string, accountID uint64, likes, comments int) error
	DeletePost(ctx context.Context, postID string, accountID uint64) error
}

type postService struct {
	posts PostRepository
}

func NewPostService(posts PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) CreatePost(ctx context.Context, accountID uint64, input DraftInput) (*dbmysql.Post, error) {
	if !input.Platform.IsValid() {
		return nil, fmt.Errorf("%w: unknown platform %q", common.ErrInvalidRequest, input.Platform)
	}
	if !input.Objective.IsValid() {
		return nil, fmt.Errorf("%w: unknown objective %q", common.ErrInvalidRequest, input.Objective)
	}
	if err := common.ValidateTopic(input.Topic); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = common.StatusDraft
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrInvalidRequest, status)
	}

	hook := common.SanitizeText(input.Content.Hook, common.HookMaxLen)
	body := common.SanitizeText(input.Content.Body, common.BodyMaxLen)
	cta := common.SanitizeText(input.Content.CTA, common.CTAMaxLen)
	tip := common.SanitizeText(input.Content.Tip, common.TipMaxLen)

	scheduled := input.ScheduledDate
	if scheduled.IsZero() {
		scheduled = time.Now()
	}

	post := &dbmysql.Post{
		PostID:        uuid.NewString(),
		AccountID:     accountID,
		Platform:      input.Platform.String(),
		Objective:     input.Objective.String(),
		Topic:         input.Topic,
		Hook:          hook,
		Body:          body,
		CTA:           cta,
		Tip:           tip,
		Hashtags:      input.Content.Hashtags,
		Status:        status.String(),
		ScheduledDate: scheduled,
	}
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, accountID uint64) ([]dbmysql.Post, error) {
	posts, err := s.posts.ListPosts(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return posts, nil
}

// SetStatus allows any transition between the three states; only enum
// membership is checked.
func (s *postService) SetStatus(ctx context.Context, postID string, accountID uint64, status common.PostStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrInvalidRequest, status)
	}

	rows, err := s.posts.UpdateStatus(ctx, postID, accountID, status.String())
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: post not found", common.ErrNotFound)
	}
	return nil
}

// SetMetrics replaces stored likes/comments; it never accumulates.
func (s *postService) SetMetrics(ctx context.Context, postID string, accountID uint64, likes, comments int) error {
	if likes < 0 || comments < 0 {
		return fmt.Errorf("%w: metrics must be non-negative", common.ErrInvalidRequest)
	}

	rows, err := s.posts.UpdateMetrics(ctx, postID, accountID, likes, comments)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: post not found", common.ErrNotFound)
	}
	return nil
}

// DeletePost is idempotent: deleting an absent (or not owned) post succeeds
// silently, matching the contract clients already rely on.
func (s *postService) DeletePost(ctx context.Context, postID string, accountID uint64) error {
	if err := s.posts.DeletePost(ctx, postID, accountID); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}
