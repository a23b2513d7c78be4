package offering

import (
	"context"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"sync"
)

var _ offeringRepo = &offeringRepoMock{}

type offeringRepoMock struct {
	CreateFunc func(ctx context.Context, o domain.Offering) (*domain.Offering, error)

	GetByIDFunc func(ctx context.Context, id int64) (*domain.Offering, error)

	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Offering, error)

	ListFunc func(ctx context.Context, f domain.OfferingFilter) ([]domain.Offering, int, error)

	UpdateFunc func(ctx context.Context, o domain.Offering) (*domain.Offering, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			O   domain.Offering
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.OfferingFilter
		}
		Update []struct {
			Ctx context.Context
			O   domain.Offering
		}
	}
	lockCreate sync.RWMutex
	lockGetByID sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *offeringRepoMock) Create(ctx context.Context, o domain.Offering) (*domain.Offering, error) {
	if mock.CreateFunc == nil {
		panic("offeringRepoMock.CreateFunc: method is nil but offeringRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   domain.Offering
	}{Ctx: ctx, O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *offeringRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   domain.Offering
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *offeringRepoMock) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	if mock.GetByIDFunc == nil {
		panic("offeringRepoMock.GetByIDFunc: method is nil but offeringRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *offeringRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *offeringRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Offering, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("offeringRepoMock.GetByIDForUpdateFunc: method is nil but offeringRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *offeringRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *offeringRepoMock) List(ctx context.Context, f domain.OfferingFilter) ([]domain.Offering, int, error) {
	if mock.ListFunc == nil {
		panic("offeringRepoMock.ListFunc: method is nil but offeringRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.OfferingFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *offeringRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.OfferingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *offeringRepoMock) Update(ctx context.Context, o domain.Offering) (*domain.Offering, error) {
	if mock.UpdateFunc == nil {
		panic("offeringRepoMock.UpdateFunc: method is nil but offeringRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   domain.Offering
	}{Ctx: ctx, O: o}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, o)
}

func (mock *offeringRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	O   domain.Offering
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
