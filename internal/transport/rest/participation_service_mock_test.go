package rest

import (
	"context"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/participation"
	"sync"
)

var _ participationService = &participationServiceMock{}

type participationServiceMock struct {
	CancelRegistrationFunc func(ctx context.Context, offeringID int64) error

	ConfirmFunc func(ctx context.Context, offeringID int64) (*domain.Participation, error)

	DecideFunc func(ctx context.Context, input participation.DecideInput) (*domain.Participation, error)

	DecideBatchFunc func(ctx context.Context, input participation.DecideBatchInput) (participation.BatchResult, error)

	EvaluateFunc func(ctx context.Context, input participation.EvaluateInput) (*domain.Participation, error)

	ListParticipantsFunc func(ctx context.Context, input participation.ListParticipantsInput) ([]domain.ParticipantView, int, error)

	RegisterFunc func(ctx context.Context, offeringID int64) (*domain.Participation, error)

	ScanFunc func(ctx context.Context, rawToken string) (*domain.ScanResult, error)

	SignInFunc func(ctx context.Context, offeringID int64) (*domain.ScanResult, error)

	SignOutFunc func(ctx context.Context, offeringID int64) (*domain.ScanResult, error)

	calls struct {
		CancelRegistration []struct {
			Ctx        context.Context
			OfferingID int64
		}
		Confirm []struct {
			Ctx        context.Context
			OfferingID int64
		}
		Decide []struct {
			Ctx   context.Context
			Input participation.DecideInput
		}
		DecideBatch []struct {
			Ctx   context.Context
			Input participation.DecideBatchInput
		}
		Evaluate []struct {
			Ctx   context.Context
			Input participation.EvaluateInput
		}
		ListParticipants []struct {
			Ctx   context.Context
			Input participation.ListParticipantsInput
		}
		Register []struct {
			Ctx        context.Context
			OfferingID int64
		}
		Scan []struct {
			Ctx      context.Context
			RawToken string
		}
		SignIn []struct {
			Ctx        context.Context
			OfferingID int64
		}
		SignOut []struct {
			Ctx        context.Context
			OfferingID int64
		}
	}
	lockCancelRegistration sync.RWMutex
	lockConfirm sync.RWMutex
	lockDecide sync.RWMutex
	lockDecideBatch sync.RWMutex
	lockEvaluate sync.RWMutex
	lockListParticipants sync.RWMutex
	lockRegister sync.RWMutex
	lockScan sync.RWMutex
	lockSignIn sync.RWMutex
	lockSignOut sync.RWMutex
}

func (mock *participationServiceMock) CancelRegistration(ctx context.Context, offeringID int64) error {
	if mock.CancelRegistrationFunc == nil {
		panic("participationServiceMock.CancelRegistrationFunc: method is nil but participationService.CancelRegistration was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockCancelRegistration.Lock()
	mock.calls.CancelRegistration = append(mock.calls.CancelRegistration, callInfo)
	mock.lockCancelRegistration.Unlock()
	return mock.CancelRegistrationFunc(ctx, offeringID)
}

func (mock *participationServiceMock) CancelRegistrationCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockCancelRegistration.RLock()
	calls := mock.calls.CancelRegistration
	mock.lockCancelRegistration.RUnlock()
	return calls
}

func (mock *participationServiceMock) Confirm(ctx context.Context, offeringID int64) (*domain.Participation, error) {
	if mock.ConfirmFunc == nil {
		panic("participationServiceMock.ConfirmFunc: method is nil but participationService.Confirm was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockConfirm.Lock()
	mock.calls.Confirm = append(mock.calls.Confirm, callInfo)
	mock.lockConfirm.Unlock()
	return mock.ConfirmFunc(ctx, offeringID)
}

func (mock *participationServiceMock) ConfirmCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockConfirm.RLock()
	calls := mock.calls.Confirm
	mock.lockConfirm.RUnlock()
	return calls
}

func (mock *participationServiceMock) Decide(ctx context.Context, input participation.DecideInput) (*domain.Participation, error) {
	if mock.DecideFunc == nil {
		panic("participationServiceMock.DecideFunc: method is nil but participationService.Decide was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input participation.DecideInput
	}{Ctx: ctx, Input: input}
	mock.lockDecide.Lock()
	mock.calls.Decide = append(mock.calls.Decide, callInfo)
	mock.lockDecide.Unlock()
	return mock.DecideFunc(ctx, input)
}

func (mock *participationServiceMock) DecideCalls() []struct {
	Ctx   context.Context
	Input participation.DecideInput
} {
	mock.lockDecide.RLock()
	calls := mock.calls.Decide
	mock.lockDecide.RUnlock()
	return calls
}

func (mock *participationServiceMock) DecideBatch(ctx context.Context, input participation.DecideBatchInput) (participation.BatchResult, error) {
	if mock.DecideBatchFunc == nil {
		panic("participationServiceMock.DecideBatchFunc: method is nil but participationService.DecideBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input participation.DecideBatchInput
	}{Ctx: ctx, Input: input}
	mock.lockDecideBatch.Lock()
	mock.calls.DecideBatch = append(mock.calls.DecideBatch, callInfo)
	mock.lockDecideBatch.Unlock()
	return mock.DecideBatchFunc(ctx, input)
}

func (mock *participationServiceMock) DecideBatchCalls() []struct {
	Ctx   context.Context
	Input participation.DecideBatchInput
} {
	mock.lockDecideBatch.RLock()
	calls := mock.calls.DecideBatch
	mock.lockDecideBatch.RUnlock()
	return calls
}

func (mock *participationServiceMock) Evaluate(ctx context.Context, input participation.EvaluateInput) (*domain.Participation, error) {
	if mock.EvaluateFunc == nil {
		panic("participationServiceMock.EvaluateFunc: method is nil but participationService.Evaluate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input participation.EvaluateInput
	}{Ctx: ctx, Input: input}
	mock.lockEvaluate.Lock()
	mock.calls.Evaluate = append(mock.calls.Evaluate, callInfo)
	mock.lockEvaluate.Unlock()
	return mock.EvaluateFunc(ctx, input)
}

func (mock *participationServiceMock) EvaluateCalls() []struct {
	Ctx   context.Context
	Input participation.EvaluateInput
} {
	mock.lockEvaluate.RLock()
	calls := mock.calls.Evaluate
	mock.lockEvaluate.RUnlock()
	return calls
}

func (mock *participationServiceMock) ListParticipants(ctx context.Context, input participation.ListParticipantsInput) ([]domain.ParticipantView, int, error) {
	if mock.ListParticipantsFunc == nil {
		panic("participationServiceMock.ListParticipantsFunc: method is nil but participationService.ListParticipants was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input participation.ListParticipantsInput
	}{Ctx: ctx, Input: input}
	mock.lockListParticipants.Lock()
	mock.calls.ListParticipants = append(mock.calls.ListParticipants, callInfo)
	mock.lockListParticipants.Unlock()
	return mock.ListParticipantsFunc(ctx, input)
}

func (mock *participationServiceMock) ListParticipantsCalls() []struct {
	Ctx   context.Context
	Input participation.ListParticipantsInput
} {
	mock.lockListParticipants.RLock()
	calls := mock.calls.ListParticipants
	mock.lockListParticipants.RUnlock()
	return calls
}

func (mock *participationServiceMock) Register(ctx context.Context, offeringID int64) (*domain.Participation, error) {
	if mock.RegisterFunc == nil {
		panic("participationServiceMock.RegisterFunc: method is nil but participationService.Register was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, offeringID)
}

func (mock *participationServiceMock) RegisterCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *participationServiceMock) Scan(ctx context.Context, rawToken string) (*domain.ScanResult, error) {
	if mock.ScanFunc == nil {
		panic("participationServiceMock.ScanFunc: method is nil but participationService.Scan was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockScan.Lock()
	mock.calls.Scan = append(mock.calls.Scan, callInfo)
	mock.lockScan.Unlock()
	return mock.ScanFunc(ctx, rawToken)
}

func (mock *participationServiceMock) ScanCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockScan.RLock()
	calls := mock.calls.Scan
	mock.lockScan.RUnlock()
	return calls
}

func (mock *participationServiceMock) SignIn(ctx context.Context, offeringID int64) (*domain.ScanResult, error) {
	if mock.SignInFunc == nil {
		panic("participationServiceMock.SignInFunc: method is nil but participationService.SignIn was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, offeringID)
}

func (mock *participationServiceMock) SignInCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *participationServiceMock) SignOut(ctx context.Context, offeringID int64) (*domain.ScanResult, error) {
	if mock.SignOutFunc == nil {
		panic("participationServiceMock.SignOutFunc: method is nil but participationService.SignOut was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OfferingID int64
	}{Ctx: ctx, OfferingID: offeringID}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, offeringID)
}

func (mock *participationServiceMock) SignOutCalls() []struct {
	Ctx        context.Context
	OfferingID int64
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}
