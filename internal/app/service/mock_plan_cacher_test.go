package service

import (
	context "context"
	time "time"

	dto "github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	mock "github.com/stretchr/testify/mock"
)

// MockPlanCacher is a mock type for the PlanCacher type
type MockPlanCacher struct {
	mock.Mock
}

// AcquireLock provides a mock function with given fields: ctx, key, timeout
func (_m *MockPlanCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	ret := _m.Called(ctx, key, timeout)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) bool); ok {
		r0 = rf(ctx, key, timeout)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, time.Duration) error); ok {
		r1 = rf(ctx, key, timeout)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetCacheKey provides a mock function with given fields: kind, req
func (_m *MockPlanCacher) GetCacheKey(kind string, req interface{}) (string, error) {
	ret := _m.Called(kind, req)

	var r0 string
	if rf, ok := ret.Get(0).(func(string, interface{}) string); ok {
		r0 = rf(kind, req)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, interface{}) error); ok {
		r1 = rf(kind, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetLockKey provides a mock function with given fields: cacheKey
func (_m *MockPlanCacher) GetLockKey(cacheKey string) string {
	ret := _m.Called(cacheKey)

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(cacheKey)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// GetPlan provides a mock function with given fields: ctx, key
func (_m *MockPlanCacher) GetPlan(ctx context.Context, key string) (dto.OptimizeResponse, error) {
	ret := _m.Called(ctx, key)

	var r0 dto.OptimizeResponse
	if rf, ok := ret.Get(0).(func(context.Context, string) dto.OptimizeResponse); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(dto.OptimizeResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetRanking provides a mock function with given fields: ctx, key
func (_m *MockPlanCacher) GetRanking(ctx context.Context, key string) (dto.RankResponse, error) {
	ret := _m.Called(ctx, key)

	var r0 dto.RankResponse
	if rf, ok := ret.Get(0).(func(context.Context, string) dto.RankResponse); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(dto.RankResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReleaseLock provides a mock function with given fields: ctx, key
func (_m *MockPlanCacher) ReleaseLock(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetPlan provides a mock function with given fields: ctx, key, resp, expiration
func (_m *MockPlanCacher) SetPlan(ctx context.Context, key string, resp dto.OptimizeResponse, expiration time.Duration) error {
	ret := _m.Called(ctx, key, resp, expiration)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, dto.OptimizeResponse, time.Duration) error); ok {
		r0 = rf(ctx, key, resp, expiration)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetRanking provides a mock function with given fields: ctx, key, resp, expiration
func (_m *MockPlanCacher) SetRanking(ctx context.Context, key string, resp dto.RankResponse, expiration time.Duration) error {
	ret := _m.Called(ctx, key, resp, expiration)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, dto.RankResponse, time.Duration) error); ok {
		r0 = rf(ctx, key, resp, expiration)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockPlanCacher creates a new instance of MockPlanCacher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPlanCacher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlanCacher {
	mock := &MockPlanCacher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
