package rest

import (
	"context"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/offering"
	"sync"
)

var _ offeringService = &offeringServiceMock{}

type offeringServiceMock struct {
	CreateFunc func(ctx context.Context, input offering.CreateInput) (*domain.Offering, error)

	GetFunc func(ctx context.Context, id int64) (*domain.Offering, error)

	ListFunc func(ctx context.Context, input offering.ListInput) ([]domain.Offering, int, error)

	UpdateFunc func(ctx context.Context, id int64, input offering.UpdateInput) (*domain.Offering, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input offering.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx   context.Context
			Input offering.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Input offering.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockGet sync.RWMutex
	lockList sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *offeringServiceMock) Create(ctx context.Context, input offering.CreateInput) (*domain.Offering, error) {
	if mock.CreateFunc == nil {
		panic("offeringServiceMock.CreateFunc: method is nil but offeringService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input offering.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *offeringServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input offering.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *offeringServiceMock) Get(ctx context.Context, id int64) (*domain.Offering, error) {
	if mock.GetFunc == nil {
		panic("offeringServiceMock.GetFunc: method is nil but offeringService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *offeringServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *offeringServiceMock) List(ctx context.Context, input offering.ListInput) ([]domain.Offering, int, error) {
	if mock.ListFunc == nil {
		panic("offeringServiceMock.ListFunc: method is nil but offeringService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input offering.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *offeringServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input offering.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *offeringServiceMock) Update(ctx context.Context, id int64, input offering.UpdateInput) (*domain.Offering, error) {
	if mock.UpdateFunc == nil {
		panic("offeringServiceMock.UpdateFunc: method is nil but offeringService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input offering.UpdateInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *offeringServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input offering.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
