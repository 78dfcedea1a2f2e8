package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/usecase"
	"github.com/iho/ledgerexport/internal/usecase/mocks"
)

func activityAt(id string, at time.Time) *domain.Activity {
	tx := acceptedAt(id, at)
	tx.CreatedAt = at
	return &domain.Activity{Transaction: *tx, TrustDelta: 100_000}
}

func teamFilter() domain.ActivityFilter {
	return domain.ActivityFilter{UserID: "team-1", Role: domain.RoleTeam, Window: window}
}

func TestActivityUseCase_StreamPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)

	a3 := activityAt("A3", base.Add(3*time.Hour))
	a2 := activityAt("A2", base.Add(2*time.Hour))
	a1 := activityAt("A1", base.Add(time.Hour))
	filter := teamFilter()

	gomock.InOrder(
		repo.EXPECT().ListActivityPageBefore(gomock.Any(), filter, gomock.Nil(), 2).
			Return([]*domain.Activity{a3, a2}, nil),
		repo.EXPECT().ListActivityPageBefore(gomock.Any(), filter, &domain.HistoryKey{At: a2.CreatedAt, ID: "A2"}, 2).
			Return([]*domain.Activity{a1}, nil),
	)

	uc := usecase.NewActivityUseCase(repo, nil, 2)
	seq, err := uc.Stream(context.Background(), filter)
	require.NoError(t, err)

	var ids []string
	for row, err := range seq {
		require.NoError(t, err)
		ids = append(ids, row.TransactionID)
	}
	assert.Equal(t, []string{"A3", "A2", "A1"}, ids)
}

func TestActivityUseCase_StreamStopsFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)

	repo.EXPECT().ListActivityPageBefore(gomock.Any(), gomock.Any(), gomock.Nil(), 1).
		Return([]*domain.Activity{activityAt("A1", base.Add(time.Hour))}, nil)

	uc := usecase.NewActivityUseCase(repo, nil, 1)
	seq, err := uc.Stream(context.Background(), teamFilter())
	require.NoError(t, err)

	for range seq {
		break
	}
}

func TestActivityUseCase_StreamYieldsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)

	repo.EXPECT().ListActivityPageBefore(gomock.Any(), gomock.Any(), gomock.Nil(), usecase.DefaultBatchSize).
		Return(nil, domain.ErrStoreTimeout)

	uc := usecase.NewActivityUseCase(repo, nil, 0)
	seq, err := uc.Stream(context.Background(), teamFilter())
	require.NoError(t, err)

	var got error
	for _, err := range seq {
		got = err
	}
	assert.ErrorIs(t, got, domain.ErrStoreTimeout)
}

func TestActivityUseCase_StreamRejectsAgents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)

	filter := teamFilter()
	filter.Role = domain.RoleAgent

	uc := usecase.NewActivityUseCase(repo, nil, 10)
	_, err := uc.Stream(context.Background(), filter)

	assert.True(t, errors.Is(err, domain.ErrWrongRole), fmt.Sprint(err))
}

func TestActivityUseCase_StreamObservesPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepository(ctrl)
	observer := mocks.NewMockExportObserver(ctrl)

	repo.EXPECT().ListActivityPageBefore(gomock.Any(), gomock.Any(), gomock.Any(), 5).Return(nil, nil)
	observer.EXPECT().ObservePage(usecase.SourceActivity, 0, gomock.Any())

	uc := usecase.NewActivityUseCase(repo, observer, 5)
	seq, err := uc.Stream(context.Background(), teamFilter())
	require.NoError(t, err)

	for range seq {
		t.Fatal("expected no rows")
	}
}
