package participation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"sync"
	"time"
)

var _ participationRepo = &participationRepoMock{}

type participationRepoMock struct {
	AgeBandBreakdownFunc func(ctx context.Context, offeringID int64, asOf time.Time) (map[string]int, error)

	CountOccupyingFunc func(ctx context.Context, offeringID int64) (int, error)

	CreateFunc func(ctx context.Context, p domain.Participation) (*domain.Participation, error)

	DecidePendingFunc func(ctx context.Context, offeringID int64, userIDs []uuid.UUID, d domain.Decision, actorID uuid.UUID, comment *string, now time.Time) ([]domain.Participation, error)

	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	GenderBreakdownFunc func(ctx context.Context, offeringID int64) (map[string]int, error)

	GetByPairFunc func(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error)

	GetByPairForUpdateFunc func(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error)

	ListByOfferingFunc func(ctx context.Context, offeringID int64, status *domain.RegistrationStatus, limit int, offset int) ([]domain.ParticipantRow, int, error)

	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.ParticipationWithOffering, int, error)

	StatusBreakdownFunc func(ctx context.Context, offeringID int64) (map[domain.RegistrationStatus]int, error)

	SummaryFunc func(ctx context.Context, offeringID int64) (domain.StatsSummary, error)

	UpdateFunc func(ctx context.Context, p domain.Participation) (*domain.Participation, error)

	calls struct {
		AgeBandBreakdown []struct {
			Ctx        context.Context
			OfferingID int64
			AsOf       time.Time
		}
		CountOccupying []struct {
			Ctx        context.Context
			OfferingID int64
		}
		Create []struct {
			Ctx context.Context
			P   domain.Participation
		}
		DecidePending []struct {
			Ctx        context.Context
			OfferingID int64
			UserIDs    []uuid.UUID
			D          domain.Decision
			ActorID    uuid.UUID
			Comment    *string
			Now        time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GenderBreakdown []struct {
			Ctx        context.Context
			OfferingID int64
		}
		GetByPair []struct {
			Ctx        context.Context
			OfferingID int64
			UserID     uuid.UUID
		}
		GetByPairForUpdate []struct {
			Ctx        context.Context
			OfferingID int64
			UserID     uuid.UUID
		}
		ListByOffering []struct {
			Ctx        context.Context
			OfferingID int64
			Status     *domain.RegistrationStatus
			Limit      int
			Offset     int
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		StatusBreakdown []struct {
			Ctx        context.Context
			OfferingID int64
		}
		Summary []struct {
			Ctx        context.Context
			OfferingID int64
		}
		Update []struct {
			Ctx context.Context
			P   domain.Participation
		}
	}
	lockAgeBandBreakdown sync.RWMutex
	lockCountOccupying sync.RWMutex
	lockCreate sync.RWMutex
	lockDecidePending sync.RWMutex
	lockDelete sync.RWMutex
	lockGenderBreakdown sync.RWMutex
	lockGetByPair sync.RWMutex
	lockGetByPairForUpdate sync.RWMutex
	lockListByOffering sync.RWMutex
	lockListByUser sync.RWMutex
	lockStatusBreakdown sync.RWMutex
	lockSummary sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *participationRepoMock) AgeBandBreakdown(ctx context.Context, offeringID int64, asOf time.Time) (map[string]int, error) {
	if mock.AgeBandBreakdownFunc == nil {
		panic("participationRepoMock.AgeBandBreakdownFunc: method is nil but participationRepo.AgeBandBreakdown was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
		AsOf       time.Time
	}{Ctx: ctx, OfferingID: offeringID, AsOf: asOf}
	mock.lockAgeBandBreakdown.Lock()
	mock.calls.AgeBandBreakdown = append(mock.calls.AgeBandBreakdown, callInfo)
	mock.lockAgeBandBreakdown.Unlock()
	return mock.AgeBandBreakdownFunc(ctx, offeringID, asOf)
}

func (mock *participationRepoMock) AgeBandBreakdownCalls() []struct {
	Ctx        context.Context
	OfferingID int64
	AsOf       time.Time
} {
	mock.lockAgeBandBreakdown.RLock()
	calls := mock.calls.AgeBandBreakdown
	mock.lockAgeBandBreakdown.RUnlock()
	return calls
}

func (mock *participationRepoMock) CountOccupying(ctx context.Context, offeringID int64) (int, error) {
	if mock.CountOccupyingFunc == nil {
		panic("participationRepoMock.CountOccupyingFunc: method is nil but participationRepo.CountOccupying was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockCountOccupying.Lock()
	mock.calls.CountOccupying = append(mock.calls.CountOccupying, callInfo)
	mock.lockCountOccupying.Unlock()
	return mock.CountOccupyingFunc(ctx, offeringID)
}

func (mock *participationRepoMock) CountOccupyingCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockCountOccupying.RLock()
	calls := mock.calls.CountOccupying
	mock.lockCountOccupying.RUnlock()
	return calls
}

func (mock *participationRepoMock) Create(ctx context.Context, p domain.Participation) (*domain.Participation, error) {
	if mock.CreateFunc == nil {
		panic("participationRepoMock.CreateFunc: method is nil but participationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Participation
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *participationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Participation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *participationRepoMock) DecidePending(ctx context.Context, offeringID int64, userIDs []uuid.UUID, d domain.Decision, actorID uuid.UUID, comment *string, now time.Time) ([]domain.Participation, error) {
	if mock.DecidePendingFunc == nil {
		panic("participationRepoMock.DecidePendingFunc: method is nil but participationRepo.DecidePending was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
		UserIDs    []uuid.UUID
		D          domain.Decision
		ActorID    uuid.UUID
		Comment    *string
		Now        time.Time
	}{Ctx: ctx, OfferingID: offeringID, UserIDs: userIDs, D: d, ActorID: actorID, Comment: comment, Now: now}
	mock.lockDecidePending.Lock()
	mock.calls.DecidePending = append(mock.calls.DecidePending, callInfo)
	mock.lockDecidePending.Unlock()
	return mock.DecidePendingFunc(ctx, offeringID, userIDs, d, actorID, comment, now)
}

func (mock *participationRepoMock) DecidePendingCalls() []struct {
	Ctx        context.Context
	OfferingID int64
	UserIDs    []uuid.UUID
	D          domain.Decision
	ActorID    uuid.UUID
	Comment    *string
	Now        time.Time
} {
	mock.lockDecidePending.RLock()
	calls := mock.calls.DecidePending
	mock.lockDecidePending.RUnlock()
	return calls
}

func (mock *participationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("participationRepoMock.DeleteFunc: method is nil but participationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *participationRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *participationRepoMock) GenderBreakdown(ctx context.Context, offeringID int64) (map[string]int, error) {
	if mock.GenderBreakdownFunc == nil {
		panic("participationRepoMock.GenderBreakdownFunc: method is nil but participationRepo.GenderBreakdown was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockGenderBreakdown.Lock()
	mock.calls.GenderBreakdown = append(mock.calls.GenderBreakdown, callInfo)
	mock.lockGenderBreakdown.Unlock()
	return mock.GenderBreakdownFunc(ctx, offeringID)
}

func (mock *participationRepoMock) GenderBreakdownCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockGenderBreakdown.RLock()
	calls := mock.calls.GenderBreakdown
	mock.lockGenderBreakdown.RUnlock()
	return calls
}

func (mock *participationRepoMock) GetByPair(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error) {
	if mock.GetByPairFunc == nil {
		panic("participationRepoMock.GetByPairFunc: method is nil but participationRepo.GetByPair was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
		UserID     uuid.UUID
	}{Ctx: ctx, OfferingID: offeringID, UserID: userID}
	mock.lockGetByPair.Lock()
	mock.calls.GetByPair = append(mock.calls.GetByPair, callInfo)
	mock.lockGetByPair.Unlock()
	return mock.GetByPairFunc(ctx, offeringID, userID)
}

func (mock *participationRepoMock) GetByPairCalls() []struct {
	Ctx        context.Context
	OfferingID int64
	UserID     uuid.UUID
} {
	mock.lockGetByPair.RLock()
	calls := mock.calls.GetByPair
	mock.lockGetByPair.RUnlock()
	return calls
}

func (mock *participationRepoMock) GetByPairForUpdate(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error) {
	if mock.GetByPairForUpdateFunc == nil {
		panic("participationRepoMock.GetByPairForUpdateFunc: method is nil but participationRepo.GetByPairForUpdate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
		UserID     uuid.UUID
	}{Ctx: ctx, OfferingID: offeringID, UserID: userID}
	mock.lockGetByPairForUpdate.Lock()
	mock.calls.GetByPairForUpdate = append(mock.calls.GetByPairForUpdate, callInfo)
	mock.lockGetByPairForUpdate.Unlock()
	return mock.GetByPairForUpdateFunc(ctx, offeringID, userID)
}

func (mock *participationRepoMock) GetByPairForUpdateCalls() []struct {
	Ctx        context.Context
	OfferingID int64
	UserID     uuid.UUID
} {
	mock.lockGetByPairForUpdate.RLock()
	calls := mock.calls.GetByPairForUpdate
	mock.lockGetByPairForUpdate.RUnlock()
	return calls
}

func (mock *participationRepoMock) ListByOffering(ctx context.Context, offeringID int64, status *domain.RegistrationStatus, limit int, offset int) ([]domain.ParticipantRow, int, error) {
	if mock.ListByOfferingFunc == nil {
		panic("participationRepoMock.ListByOfferingFunc: method is nil but participationRepo.ListByOffering was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
		Status     *domain.RegistrationStatus
		Limit      int
		Offset     int
	}{Ctx: ctx, OfferingID: offeringID, Status: status, Limit: limit, Offset: offset}
	mock.lockListByOffering.Lock()
	mock.calls.ListByOffering = append(mock.calls.ListByOffering, callInfo)
	mock.lockListByOffering.Unlock()
	return mock.ListByOfferingFunc(ctx, offeringID, status, limit, offset)
}

func (mock *participationRepoMock) ListByOfferingCalls() []struct {
	Ctx        context.Context
	OfferingID int64
	Status     *domain.RegistrationStatus
	Limit      int
	Offset     int
} {
	mock.lockListByOffering.RLock()
	calls := mock.calls.ListByOffering
	mock.lockListByOffering.RUnlock()
	return calls
}

func (mock *participationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.ParticipationWithOffering, int, error) {
	if mock.ListByUserFunc == nil {
		panic("participationRepoMock.ListByUserFunc: method is nil but participationRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *participationRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *participationRepoMock) StatusBreakdown(ctx context.Context, offeringID int64) (map[domain.RegistrationStatus]int, error) {
	if mock.StatusBreakdownFunc == nil {
		panic("participationRepoMock.StatusBreakdownFunc: method is nil but participationRepo.StatusBreakdown was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockStatusBreakdown.Lock()
	mock.calls.StatusBreakdown = append(mock.calls.StatusBreakdown, callInfo)
	mock.lockStatusBreakdown.Unlock()
	return mock.StatusBreakdownFunc(ctx, offeringID)
}

func (mock *participationRepoMock) StatusBreakdownCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockStatusBreakdown.RLock()
	calls := mock.calls.StatusBreakdown
	mock.lockStatusBreakdown.RUnlock()
	return calls
}

func (mock *participationRepoMock) Summary(ctx context.Context, offeringID int64) (domain.StatsSummary, error) {
	if mock.SummaryFunc == nil {
		panic("participationRepoMock.SummaryFunc: method is nil but participationRepo.Summary was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, offeringID)
}

func (mock *participationRepoMock) SummaryCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *participationRepoMock) Update(ctx context.Context, p domain.Participation) (*domain.Participation, error) {
	if mock.UpdateFunc == nil {
		panic("participationRepoMock.UpdateFunc: method is nil but participationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Participation
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *participationRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Participation
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
