package post

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

func TestPostService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPostRepository(ctrl)
	svc := NewPostService(mockRepo)
	ctx := context.Background()

	validContent := common.GeneratedContent{
		Hook: "H", Body: "B", CTA: "C", Tip: "T", Hashtags: []string{"go", "dev"},
	}

	tests := []struct {
		name    string
		input   DraftInput
		setup   func()
		wantErr error
		check   func(t *testing.T, p *dbmysql.Post)
	}{
		{
			name: "defaults to draft with assigned id",
			input: DraftInput{
				Platform:  common.PlatformLinkedIn,
				Objective: common.ObjectiveAuthority,
				Topic:     "5 dicas de produtividade",
				Content:   validContent,
			},
			setup: func() {
				mockRepo.EXPECT().CreatePost(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, p *dbmysql.Post) {
				require.NotEmpty(t, p.PostID)
				require.Equal(t, "Draft", p.Status)
				require.Equal(t, uint64(7), p.AccountID)
				require.False(t, p.ScheduledDate.IsZero())
				require.Equal(t, []string{"go", "dev"}, p.Hashtags)
			},
		},
		{
			name: "explicit scheduled status is kept",
			input: DraftInput{
				Platform:  common.PlatformInstagram,
				Objective: common.ObjectiveEngagement,
				Topic:     "bastidores do estúdio",
				Content:   validContent,
				Status:    common.StatusScheduled,
			},
			setup: func() {
				mockRepo.EXPECT().CreatePost(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, p *dbmysql.Post) {
				require.Equal(t, "Scheduled", p.Status)
			},
		},
		{
			name: "unknown platform",
			input: DraftInput{
				Platform:  common.Platform("Orkut"),
				Objective: common.ObjectiveAuthority,
				Topic:     "qualquer coisa",
				Content:   validContent,
			},
			setup:   func() {},
			wantErr: common.ErrInvalidRequest,
		},
		{
			name: "unknown status",
			input: DraftInput{
				Platform:  common.PlatformLinkedIn,
				Objective: common.ObjectiveAuthority,
				Topic:     "qualquer coisa",
				Content:   validContent,
				Status:    common.PostStatus("Archived"),
			},
			setup:   func() {},
			wantErr: common.ErrInvalidRequest,
		},
		{
			name: "topic too short",
			input: DraftInput{
				Platform:  common.PlatformLinkedIn,
				Objective: common.ObjectiveAuthority,
				Topic:     "ab",
				Content:   validContent,
			},
			setup:   func() {},
			wantErr: common.ErrInvalidRequest,
		},
		{
			name: "repo failure wraps persistence error",
			input: DraftInput{
				Platform:  common.PlatformLinkedIn,
				Objective: common.ObjectiveAuthority,
				Topic:     "tema válido",
				Content:   validContent,
			},
			setup: func() {
				mockRepo.EXPECT().CreatePost(ctx, gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: common.ErrPersistence,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			created, err := svc.CreatePost(ctx, 7, tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, created)
			}
		})
	}
}

func TestPostService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPostRepository(ctrl)
	svc := NewPostService(mockRepo)
	ctx := context.Background()

	t.Run("any transition between valid states is allowed", func(t *testing.T) {
		// Published back to Draft is deliberately permitted.
		mockRepo.EXPECT().UpdateStatus(ctx, "p1", uint64(1), "Draft").Return(int64(1), nil)
		require.NoError(t, svc.SetStatus(ctx, "p1", 1, common.StatusDraft))
	})

	t.Run("invalid status never reaches the repository", func(t *testing.T) {
		err := svc.SetStatus(ctx, "p1", 1, common.PostStatus("Rascunho"))
		require.ErrorIs(t, err, common.ErrInvalidRequest)
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		mockRepo.EXPECT().UpdateStatus(ctx, "missing", uint64(1), "Published").Return(int64(0), nil)
		err := svc.SetStatus(ctx, "missing", 1, common.StatusPublished)
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestPostService_SetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPostRepository(ctrl)
	svc := NewPostService(mockRepo)
	ctx := context.Background()

	t.Run("replaces stored values", func(t *testing.T) {
		mockRepo.EXPECT().UpdateMetrics(ctx, "p1", uint64(3), 42, 7).Return(int64(1), nil)
		require.NoError(t, svc.SetMetrics(ctx, "p1", 3, 42, 7))
	})

	t.Run("negative likes rejected before any write", func(t *testing.T) {
		err := svc.SetMetrics(ctx, "p1", 3, -1, 0)
		require.ErrorIs(t, err, common.ErrInvalidRequest)
	})

	t.Run("negative comments rejected before any write", func(t *testing.T) {
		err := svc.SetMetrics(ctx, "p1", 3, 0, -5)
		require.ErrorIs(t, err, common.ErrInvalidRequest)
	})

	t.Run("not owned behaves as not found", func(t *testing.T) {
		mockRepo.EXPECT().UpdateMetrics(ctx, "p1", uint64(99), 1, 1).Return(int64(0), nil)
		err := svc.SetMetrics(ctx, "p1", 99, 1, 1)
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestPostService_DeletePost_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPostRepository(ctrl)
	svc := NewPostService(mockRepo)
	ctx := context.Background()

	// Deleting twice succeeds both times; the second call simply affects no
	// rows. Documented contract, not an accident.
	mockRepo.EXPECT().DeletePost(ctx, "p1", uint64(1)).Return(nil).Times(2)
	require.NoError(t, svc.DeletePost(ctx, "p1", 1))
	require.NoError(t, svc.DeletePost(ctx, "p1", 1))
}
