package notification

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"sync"
	"time"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	DeleteReadBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)

	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.Notification, int, int, error)

	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID, at time.Time) (int, error)

	MarkReadFunc func(ctx context.Context, userID uuid.UUID, id string, at time.Time) error

	calls struct {
		DeleteReadBefore []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
			At     time.Time
		}
		MarkRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     string
			At     time.Time
		}
	}
	lockDeleteReadBefore sync.RWMutex
	lockListByUser sync.RWMutex
	lockMarkAllRead sync.RWMutex
	lockMarkRead sync.RWMutex
}

func (mock *notificationRepoMock) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.DeleteReadBeforeFunc == nil {
		panic("notificationRepoMock.DeleteReadBeforeFunc: method is nil but notificationRepo.DeleteReadBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockDeleteReadBefore.Lock()
	mock.calls.DeleteReadBefore = append(mock.calls.DeleteReadBefore, callInfo)
	mock.lockDeleteReadBefore.Unlock()
	return mock.DeleteReadBeforeFunc(ctx, cutoff)
}

func (mock *notificationRepoMock) DeleteReadBeforeCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockDeleteReadBefore.RLock()
	calls := mock.calls.DeleteReadBefore
	mock.lockDeleteReadBefore.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.Notification, int, int, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
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

func (mock *notificationRepoMock) ListByUserCalls() []struct {
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

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		At     time.Time
	}{Ctx: ctx, UserID: userID, At: at}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx, userID, at)
}

func (mock *notificationRepoMock) MarkAllReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	At     time.Time
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, userID uuid.UUID, id string, at time.Time) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     string
		At     time.Time
	}{Ctx: ctx, UserID: userID, Id: id, At: at}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, userID, id, at)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     string
	At     time.Time
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
