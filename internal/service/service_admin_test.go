package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/mock"
	"github.com/MKhiriev/go-auth-shell/internal/store"
	"github.com/MKhiriev/go-auth-shell/models"
)

func newTestAdminService(t *testing.T) (AdminService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	return NewAdminService(repo, logger.Nop()), repo
}

func TestAdminService_ListUsers(t *testing.T) {
	svc, repo := newTestAdminService(t)
	ctx := context.Background()

	users := []models.User{{UserID: 1, Email: "a@example.com"}, {UserID: 2, Email: "b@example.com"}}
	repo.EXPECT().ListUsers(ctx).Return(users, nil)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAdminService_ListUsers_Error(t *testing.T) {
	svc, repo := newTestAdminService(t)
	repo.EXPECT().ListUsers(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAdminService_DeactivateUser(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "deactivated"},
		{name: "unknown user", repoErr: store.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAdminService(t)
			repo.EXPECT().SetActive(gomock.Any(), int64(4), false).Return(tt.repoErr)

			err := svc.DeactivateUser(context.Background(), 4)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdminService_ChangeRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		setup   func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name: "role attached",
			role: "admin",
			setup: func(repo *mock.MockUserRepository) {
				gomock.InOrder(
					repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{UserID: 4}, nil),
					repo.EXPECT().AttachRole(gomock.Any(), int64(4), "admin").Return(models.Role{RoleID: 2, Name: "admin"}, nil),
				)
			},
		},
		{
			name:    "empty role",
			role:    "",
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "unknown user",
			role: "admin",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: store.ErrUserNotFound,
		},
		{
			name: "attach failure",
			role: "admin",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{UserID: 4}, nil)
				repo.EXPECT().AttachRole(gomock.Any(), int64(4), "admin").Return(models.Role{}, store.ErrExecutingStatement)
			},
			wantErr: store.ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAdminService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			err := svc.ChangeRole(context.Background(), 4, tt.role)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdminService_DeleteUser(t *testing.T) {
	svc, repo := newTestAdminService(t)
	repo.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(store.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
