package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/usecase"
	"github.com/iho/ledgerexport/internal/usecase/mocks"
)

// passthroughRetrier runs the operation once.
type passthroughRetrier struct{}

func (passthroughRetrier) Retry(_ context.Context, operation func() error) error {
	return operation()
}

func TestProfileUseCase_Resolve_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	cache := mocks.NewMockProfileCache(ctrl)

	cached := &domain.AccountProfile{UserID: "u1", Name: "shop", Role: domain.RoleMerchant, BalanceID: "B1"}
	cache.EXPECT().Get(gomock.Any(), "u1").Return(cached, nil)

	uc := usecase.NewProfileUseCase(repo, cache, passthroughRetrier{})
	got, err := uc.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestProfileUseCase_Resolve_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	cache := mocks.NewMockProfileCache(ctrl)

	profile := &domain.AccountProfile{UserID: "u1", Name: "team-a", Role: domain.RoleTeam, BalanceID: "B1", Balance: 3_000_000}
	cache.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
	repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(profile, nil)
	cache.EXPECT().Set(gomock.Any(), profile).Return(nil)

	uc := usecase.NewProfileUseCase(repo, cache, passthroughRetrier{})
	got, err := uc.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileUseCase_Resolve_CacheErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	cache := mocks.NewMockProfileCache(ctrl)

	profile := &domain.AccountProfile{UserID: "u1", Role: domain.RoleAgent, BalanceID: "B1"}
	cache.EXPECT().Get(gomock.Any(), "u1").Return(nil, errors.New("connection refused"))
	repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(profile, nil)
	cache.EXPECT().Set(gomock.Any(), profile).Return(errors.New("connection refused"))

	uc := usecase.NewProfileUseCase(repo, cache, passthroughRetrier{})
	got, err := uc.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileUseCase_Resolve_UsesRetrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	retrier := mocks.NewMockRetrier(ctrl)

	retrier.EXPECT().Retry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, op func() error) error {
		if err := op(); err == nil {
			t.Fatal("expected first attempt to fail")
		}
		return op()
	})
	gomock.InOrder(
		repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, domain.ErrStoreTimeout),
		repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.AccountProfile{UserID: "u1", Role: domain.RoleTeam, BalanceID: "B1"}, nil),
	)

	uc := usecase.NewProfileUseCase(repo, nil, retrier)
	got, err := uc.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "B1", got.BalanceID)
}

func TestProfileUseCase_Resolve_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	repo.EXPECT().GetByUserID(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)

	uc := usecase.NewProfileUseCase(repo, nil, passthroughRetrier{})
	_, err := uc.Resolve(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProfileUseCase_ResolveHistoryOwner(t *testing.T) {
	tests := []struct {
		name    string
		profile *domain.AccountProfile
		wantErr error
	}{
		{name: "merchant", profile: &domain.AccountProfile{UserID: "u1", Role: domain.RoleMerchant, BalanceID: "B1"}},
		{name: "support has no history", profile: &domain.AccountProfile{UserID: "u1", Role: domain.RoleSupport}, wantErr: domain.ErrWrongRole},
		{name: "team without balance", profile: &domain.AccountProfile{UserID: "u1", Role: domain.RoleTeam}, wantErr: domain.ErrBalanceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockProfileRepository(ctrl)
			repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(tt.profile, nil)

			uc := usecase.NewProfileUseCase(repo, nil, passthroughRetrier{})
			got, err := uc.ResolveHistoryOwner(context.Background(), "u1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.profile, got)
		})
	}
}

func TestProfileUseCase_ResolveFreshHistoryOwner_SkipsCacheRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	cache := mocks.NewMockProfileCache(ctrl)

	profile := &domain.AccountProfile{UserID: "u1", Name: "team-a", Role: domain.RoleTeam, BalanceID: "B1", Balance: 7_250_000}
	repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(profile, nil)
	cache.EXPECT().Set(gomock.Any(), profile).Return(nil)

	uc := usecase.NewProfileUseCase(repo, cache, passthroughRetrier{})
	got, err := uc.ResolveFreshHistoryOwner(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(7_250_000), got.Balance)
}

func TestProfileUseCase_ResolveFreshHistoryOwner_ChecksRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)

	repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.AccountProfile{UserID: "u1", Role: domain.RoleSupport}, nil)

	uc := usecase.NewProfileUseCase(repo, nil, passthroughRetrier{})
	_, err := uc.ResolveFreshHistoryOwner(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrWrongRole)
}
