package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerexport/internal/domain"
)

// ProfileUseCase resolves account profiles for exports.
type ProfileUseCase struct {
	repo    ProfileRepository
	cache   ProfileCache
	retrier Retrier
}

// NewProfileUseCase creates a new ProfileUseCase. cache may be nil.
func NewProfileUseCase(repo ProfileRepository, cache ProfileCache, retrier Retrier) *ProfileUseCase {
	return &ProfileUseCase{
		repo:    repo,
		cache:   cache,
		retrier: retrier,
	}
}

// Resolve returns the profile of userID. A cache outage only costs a store
// round trip.
func (uc *ProfileUseCase) Resolve(ctx context.Context, userID string) (*domain.AccountProfile, error) {
	return uc.resolve(ctx, userID, true)
}

// ResolveFresh reads the profile of userID from the store and refreshes the
// cached copy.
func (uc *ProfileUseCase) ResolveFresh(ctx context.Context, userID string) (*domain.AccountProfile, error) {
	return uc.resolve(ctx, userID, false)
}

func (uc *ProfileUseCase) resolve(ctx context.Context, userID string, cached bool) (*domain.AccountProfile, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}

	log := zerolog.Ctx(ctx)

	if cached && uc.cache != nil {
		cached, err := uc.cache.Get(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	var profile *domain.AccountProfile
	err := uc.retrier.Retry(ctx, func() error {
		p, err := uc.repo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve profile %s: %w", userID, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, profile); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("profile cache write failed")
		}
	}

	return profile, nil
}

// ResolveHistoryOwner resolves userID and checks that it owns an exportable
// balance.
func (uc *ProfileUseCase) ResolveHistoryOwner(ctx context.Context, userID string) (*domain.AccountProfile, error) {
	profile, err := uc.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	return historyOwner(profile)
}

// ResolveFreshHistoryOwner is ResolveHistoryOwner without the cache read,
// for callers that report the current balance.
func (uc *ProfileUseCase) ResolveFreshHistoryOwner(ctx context.Context, userID string) (*domain.AccountProfile, error) {
	profile, err := uc.ResolveFresh(ctx, userID)
	if err != nil {
		return nil, err
	}
	return historyOwner(profile)
}

func historyOwner(profile *domain.AccountProfile) (*domain.AccountProfile, error) {
	if err := domain.RequireRole(profile.Role, domain.HistoryRoles...); err != nil {
		return nil, err
	}
	if profile.BalanceID == "" {
		return nil, fmt.Errorf("user %s: %w", profile.UserID, domain.ErrBalanceNotFound)
	}
	return profile, nil
}
