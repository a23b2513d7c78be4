package participation

import (
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	EnqueueFunc func(n domain.Notification) bool

	calls struct {
		Enqueue []struct {
			N domain.Notification
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *notifierMock) Enqueue(n domain.Notification) bool {
	if mock.EnqueueFunc == nil {
		panic("notifierMock.EnqueueFunc: method is nil but notifier.Enqueue was just called")
	}
	callInfo := struct {
		N domain.Notification
	}{N: n}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(n)
}

func (mock *notifierMock) EnqueueCalls() []struct {
	N domain.Notification
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
