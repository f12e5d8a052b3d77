package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/footyclub/records/internal/domain/gameday"
	gamedaymock "github.com/footyclub/records/internal/mocks/domain/gameday"
	outcomemock "github.com/footyclub/records/internal/mocks/domain/outcome"
	playerrecordmock "github.com/footyclub/records/internal/mocks/domain/playerrecord"
	"github.com/footyclub/records/internal/platform/logging"
)

func TestAggregationService_RecomputeForGameDay_GameDayNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	outcomeRepo := outcomemock.NewRepository(t)
	gamedayRepo := gamedaymock.NewRepository(t)
	recordRepo := playerrecordmock.NewRepository(t)

	service := NewAggregationService(
		outcomeRepo, gamedayRepo, recordRepo, DefaultThresholds(), 2, nil, logging.NewNop(),
	)

	gamedayRepo.
		On("Get", mock.Anything, int64(404)).
		Return(gameday.GameDay{}, false, nil).
		Once()

	err := service.RecomputeForGameDay(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAggregationService_RecomputeForGameDay_SourceFailureUsingMockery(t *testing.T) {
	t.Parallel()

	outcomeRepo := outcomemock.NewRepository(t)
	gamedayRepo := gamedaymock.NewRepository(t)
	recordRepo := playerrecordmock.NewRepository(t)

	service := NewAggregationService(
		outcomeRepo, gamedayRepo, recordRepo, DefaultThresholds(), 2, nil, logging.NewNop(),
	)

	gamedayRepo.
		On("Get", mock.Anything, int64(7)).
		Return(gameday.GameDay{ID: 7, Year: 2024, Game: true}, true, nil).
		Once()
	outcomeRepo.
		On("ListByGameDay", mock.Anything, int64(7)).
		Return(nil, errors.New("source offline")).
		Once()

	err := service.RecomputeForGameDay(context.Background(), 7)
	if !errors.Is(err, ErrUpstreamRead) {
		t.Fatalf("expected ErrUpstreamRead, got %v", err)
	}
	if got := service.Progress().State; got != RunStateFailed {
		t.Fatalf("unexpected progress state after failure: %s", got)
	}
}

func TestAggregationService_RecomputeAll_DeleteFailureUsingMockery(t *testing.T) {
	t.Parallel()

	outcomeRepo := outcomemock.NewRepository(t)
	gamedayRepo := gamedaymock.NewRepository(t)
	recordRepo := playerrecordmock.NewRepository(t)

	service := NewAggregationService(
		outcomeRepo, gamedayRepo, recordRepo, DefaultThresholds(), 2, nil, logging.NewNop(),
	)

	recordRepo.
		On("DeleteAll", mock.Anything).
		Return(errors.New("store offline")).
		Once()

	if err := service.RecomputeAll(context.Background()); err == nil {
		t.Fatal("expected error when the record store cannot be cleared")
	}
}
