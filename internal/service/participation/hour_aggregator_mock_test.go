package participation

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ hourAggregator = &hourAggregatorMock{}

type hourAggregatorMock struct {
	AddVolunteerHoursFunc func(ctx context.Context, id uuid.UUID, delta float64) error

	calls struct {
		AddVolunteerHours []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Delta float64
		}
	}
	lockAddVolunteerHours sync.RWMutex
}

func (mock *hourAggregatorMock) AddVolunteerHours(ctx context.Context, id uuid.UUID, delta float64) error {
	if mock.AddVolunteerHoursFunc == nil {
		panic("hourAggregatorMock.AddVolunteerHoursFunc: method is nil but hourAggregator.AddVolunteerHours was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Delta float64
	}{Ctx: ctx, Id: id, Delta: delta}
	mock.lockAddVolunteerHours.Lock()
	mock.calls.AddVolunteerHours = append(mock.calls.AddVolunteerHours, callInfo)
	mock.lockAddVolunteerHours.Unlock()
	return mock.AddVolunteerHoursFunc(ctx, id, delta)
}

func (mock *hourAggregatorMock) AddVolunteerHoursCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Delta float64
} {
	mock.lockAddVolunteerHours.RLock()
	calls := mock.calls.AddVolunteerHours
	mock.lockAddVolunteerHours.RUnlock()
	return calls
}
