// Code generated by MockGen would normally be written here; hand-authored
// in its place since this exercise runs no build toolchain. Shape and
// naming follow github.com/golang/mock's generated output for a
// single-interface source file.
//
// Source: internal/heap/observer.go

package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockObserver is a mock of the heap.Observer interface.
type MockObserver struct {
	ctrl     *gomock.Controller
	recorder *MockObserverMockRecorder
}

// MockObserverMockRecorder is the mock recorder for MockObserver.
type MockObserverMockRecorder struct {
	mock *MockObserver
}

// NewMockObserver creates a new mock instance.
func NewMockObserver(ctrl *gomock.Controller) *MockObserver {
	mock := &MockObserver{ctrl: ctrl}
	mock.recorder = &MockObserverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockObserver) EXPECT() *MockObserverMockRecorder {
	return m.recorder
}

// OnAllocate mocks base method.
func (m *MockObserver) OnAllocate(name string, requested, blockSize int, isRoot bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnAllocate", name, requested, blockSize, isRoot)
}

// OnAllocate indicates an expected call of OnAllocate.
func (mr *MockObserverMockRecorder) OnAllocate(name, requested, blockSize, isRoot any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnAllocate",
		reflect.TypeOf((*MockObserver)(nil).OnAllocate), name, requested, blockSize, isRoot)
}

// OnFree mocks base method.
func (m *MockObserver) OnFree(name string, size int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnFree", name, size)
}

// OnFree indicates an expected call of OnFree.
func (mr *MockObserverMockRecorder) OnFree(name, size any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnFree",
		reflect.TypeOf((*MockObserver)(nil).OnFree), name, size)
}

// OnSplit mocks base method.
func (m *MockObserver) OnSplit(originalSize, residualTarget int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnSplit", originalSize, residualTarget)
}

// OnSplit indicates an expected call of OnSplit.
func (mr *MockObserverMockRecorder) OnSplit(originalSize, residualTarget any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnSplit",
		reflect.TypeOf((*MockObserver)(nil).OnSplit), originalSize, residualTarget)
}

// OnMerge mocks base method.
func (m *MockObserver) OnMerge(mergedCount int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnMerge", mergedCount)
}

// OnMerge indicates an expected call of OnMerge.
func (mr *MockObserverMockRecorder) OnMerge(mergedCount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnMerge",
		reflect.TypeOf((*MockObserver)(nil).OnMerge), mergedCount)
}

// OnCollect mocks base method.
func (m *MockObserver) OnCollect(freed, totalCollections int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnCollect", freed, totalCollections)
}

// OnCollect indicates an expected call of OnCollect.
func (mr *MockObserverMockRecorder) OnCollect(freed, totalCollections any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnCollect",
		reflect.TypeOf((*MockObserver)(nil).OnCollect), freed, totalCollections)
}

// OnWarning mocks base method.
func (m *MockObserver) OnWarning(message string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnWarning", message)
}

// OnWarning indicates an expected call of OnWarning.
func (mr *MockObserverMockRecorder) OnWarning(message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnWarning",
		reflect.TypeOf((*MockObserver)(nil).OnWarning), message)
}
