package post

import (
	"context"

	"gorm.io/gorm"

	"socialcopilot/internal/dbmysql"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	ListPosts(ctx context.Context, accountID uint64) ([]dbmysql.Post, error)
	UpdateStatus(ctx context.Context, postID string, accountID uint64, status string) (int64, error)
	UpdateMetrics(ctx context.Context, postID string, accountID uint64, likes, comments int) (int64, error)
	DeletePost(ctx context.Context, postID string, accountID uint64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ListPosts(ctx context.Context, accountID uint64) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// UpdateStatus applies a single conditional UPDATE scoped by owner. The
// rows-affected count tells the service whether the post existed; two racing
// updates on the same id cannot lose each other's write.
func (r *postRepository) UpdateStatus(ctx context.Context, postID string, accountID uint64, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *postRepository) UpdateMetrics(ctx context.Context, postID string, accountID uint64, likes, comments int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Updates(map[string]interface{}{"likes": likes, "comments": comments})
	return res.RowsAffected, res.Error
}

func (r *postRepository) DeletePost(ctx context.Context, postID string, accountID uint64) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Delete(&dbmysql.Post{}).Error
}
