package rest

import (
	"context"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/notification"
	"github.com/heartmarshall/volunteer-backend/internal/service/user"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc func(ctx context.Context) (*domain.User, error)

	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
	}
	lockGetProfile sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	ListMineFunc func(ctx context.Context, limit int, offset int) ([]domain.ParticipationWithOffering, int, error)

	calls struct {
		ListMine []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockListMine sync.RWMutex
}

func (mock *historyServiceMock) ListMine(ctx context.Context, limit int, offset int) ([]domain.ParticipationWithOffering, int, error) {
	if mock.ListMineFunc == nil {
		panic("historyServiceMock.ListMineFunc: method is nil but historyService.ListMine was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, limit, offset)
}

func (mock *historyServiceMock) ListMineCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

var _ inboxService = &inboxServiceMock{}

type inboxServiceMock struct {
	ListMineFunc func(ctx context.Context, limit int, offset int) (*notification.Inbox, error)

	MarkAllReadFunc func(ctx context.Context) (int, error)

	MarkReadFunc func(ctx context.Context, id string) error

	calls struct {
		ListMine []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		MarkAllRead []struct {
			Ctx context.Context
		}
		MarkRead []struct {
			Ctx context.Context
			Id  string
		}
	}
	lockListMine sync.RWMutex
	lockMarkAllRead sync.RWMutex
	lockMarkRead sync.RWMutex
}

func (mock *inboxServiceMock) ListMine(ctx context.Context, limit int, offset int) (*notification.Inbox, error) {
	if mock.ListMineFunc == nil {
		panic("inboxServiceMock.ListMineFunc: method is nil but inboxService.ListMine was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, limit, offset)
}

func (mock *inboxServiceMock) ListMineCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *inboxServiceMock) MarkAllRead(ctx context.Context) (int, error) {
	if mock.MarkAllReadFunc == nil {
		panic("inboxServiceMock.MarkAllReadFunc: method is nil but inboxService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx)
}

func (mock *inboxServiceMock) MarkAllReadCalls() []struct {
	Ctx context.Context
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *inboxServiceMock) MarkRead(ctx context.Context, id string) error {
	if mock.MarkReadFunc == nil {
		panic("inboxServiceMock.MarkReadFunc: method is nil but inboxService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *inboxServiceMock) MarkReadCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
