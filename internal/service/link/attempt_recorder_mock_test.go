package link

import (
	"sync"
)

var _ attemptRecorder = &attemptRecorderMock{}

type attemptRecorderMock struct {
	LinkAttemptFunc func(path string, outcome string)

	calls struct {
		LinkAttempt []struct {
			Path    string
			Outcome string
		}
	}
	lockLinkAttempt sync.RWMutex
}

func (mock *attemptRecorderMock) LinkAttempt(path string, outcome string) {
	if mock.LinkAttemptFunc == nil {
		panic("attemptRecorderMock.LinkAttemptFunc: method is nil but attemptRecorder.LinkAttempt was just called")
	}
	callInfo := struct {
		Path    string
		Outcome string
	}{Path: path, Outcome: outcome}
	mock.lockLinkAttempt.Lock()
	mock.calls.LinkAttempt = append(mock.calls.LinkAttempt, callInfo)
	mock.lockLinkAttempt.Unlock()
	mock.LinkAttemptFunc(path, outcome)
}

func (mock *attemptRecorderMock) LinkAttemptCalls() []struct {
	Path    string
	Outcome string
} {
	mock.lockLinkAttempt.RLock()
	calls := mock.calls.LinkAttempt
	mock.lockLinkAttempt.RUnlock()
	return calls
}
