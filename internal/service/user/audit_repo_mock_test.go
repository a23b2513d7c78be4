package user

import (
	"context"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"sync"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListFunc func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error)

	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockList sync.RWMutex
	lockLog sync.RWMutex
}

func (mock *auditRepoMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error) {
	if mock.ListFunc == nil {
		panic("auditRepoMock.ListFunc: method is nil but auditRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *auditRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *auditRepoMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
