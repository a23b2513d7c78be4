package rest

import (
	"context"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"sync"
)

var _ offeringInsights = &offeringInsightsMock{}

type offeringInsightsMock struct {
	GetStatsFunc func(ctx context.Context, offeringID int64) (*domain.OfferingStats, error)

	IssueScanTokenFunc func(ctx context.Context, offeringID int64, action domain.ScanAction) (string, error)

	calls struct {
		GetStats []struct {
			Ctx        context.Context
			OfferingID int64
		}
		IssueScanToken []struct {
			Ctx        context.Context
			OfferingID int64
			Action     domain.ScanAction
		}
	}
	lockGetStats sync.RWMutex
	lockIssueScanToken sync.RWMutex
}

func (mock *offeringInsightsMock) GetStats(ctx context.Context, offeringID int64) (*domain.OfferingStats, error) {
	if mock.GetStatsFunc == nil {
		panic("offeringInsightsMock.GetStatsFunc: method is nil but offeringInsights.GetStats was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx, offeringID)
}

func (mock *offeringInsightsMock) GetStatsCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockGetStats.RLock()
	calls := mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

func (mock *offeringInsightsMock) IssueScanToken(ctx context.Context, offeringID int64, action domain.ScanAction) (string, error) {
	if mock.IssueScanTokenFunc == nil {
		panic("offeringInsightsMock.IssueScanTokenFunc: method is nil but offeringInsights.IssueScanToken was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
		Action     domain.ScanAction
	}{Ctx: ctx, OfferingID: offeringID, Action: action}
	mock.lockIssueScanToken.Lock()
	mock.calls.IssueScanToken = append(mock.calls.IssueScanToken, callInfo)
	mock.lockIssueScanToken.Unlock()
	return mock.IssueScanTokenFunc(ctx, offeringID, action)
}

func (mock *offeringInsightsMock) IssueScanTokenCalls() []struct {
	Ctx        context.Context
	OfferingID int64
	Action     domain.ScanAction
} {
	mock.lockIssueScanToken.RLock()
	calls := mock.calls.IssueScanToken
	mock.lockIssueScanToken.RUnlock()
	return calls
}
