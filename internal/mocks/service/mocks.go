// Package service holds testify mocks shared by the use case and delivery tests.
package service

import (
	"context"
	"time"

	"arena/internal/domain/entity"
	"arena/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

// Hash provides a mock function.
func (_m *MockPasswordHasher) Hash(password string) (string, string, error) {
	ret := _m.Called(password)
	if len(ret) == 0 {
		panic("no return value specified for Hash")
	}
	if rf, ok := ret.Get(0).(func(string) (string, string, error)); ok {
		return rf(password)
	}

	r0 := ret.Get(0).(string)
	r1 := ret.Get(1).(string)
	r2 := ret.Error(2)

	return r0, r1, r2
}

type MockPasswordHasher_Hash_Call struct {
	*mock.Call
}

// Hash is a helper method to define mock.On call.
func (_e *MockPasswordHasher_Expecter) Hash(password any) *MockPasswordHasher_Hash_Call {
	return &MockPasswordHasher_Hash_Call{Call: _e.mock.On("Hash", password)}
}

func (_c *MockPasswordHasher_Hash_Call) Run(run func(password string)) *MockPasswordHasher_Hash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockPasswordHasher_Hash_Call) Return(_a0 string, _a1 string, _a2 error) *MockPasswordHasher_Hash_Call {
	_c.Call.Return(_a0, _a1, _a2)

	return _c
}

func (_c *MockPasswordHasher_Hash_Call) RunAndReturn(run func(string) (string, string, error)) *MockPasswordHasher_Hash_Call {
	_c.Call.Return(run)

	return _c
}

// Verify provides a mock function.
func (_m *MockPasswordHasher) Verify(password string, hash string, salt string) (bool, error) {
	ret := _m.Called(password, hash, salt)
	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}
	if rf, ok := ret.Get(0).(func(string, string, string) (bool, error)); ok {
		return rf(password, hash, salt)
	}

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

type MockPasswordHasher_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call.
func (_e *MockPasswordHasher_Expecter) Verify(password any, hash any, salt any) *MockPasswordHasher_Verify_Call {
	return &MockPasswordHasher_Verify_Call{Call: _e.mock.On("Verify", password, hash, salt)}
}

func (_c *MockPasswordHasher_Verify_Call) Run(run func(password string, hash string, salt string)) *MockPasswordHasher_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockPasswordHasher_Verify_Call) Return(_a0 bool, _a1 error) *MockPasswordHasher_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPasswordHasher_Verify_Call) RunAndReturn(run func(string, string, string) (bool, error)) *MockPasswordHasher_Verify_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockPasswordHasher creates a MockPasswordHasher and asserts its expectations on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// Issue provides a mock function.
func (_m *MockTokenService) Issue(subjectID int64, heroIDs []entity.HeroID) (string, error) {
	ret := _m.Called(subjectID, heroIDs)
	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}
	if rf, ok := ret.Get(0).(func(int64, []entity.HeroID) (string, error)); ok {
		return rf(subjectID, heroIDs)
	}

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)

	return r0, r1
}

type MockTokenService_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call.
func (_e *MockTokenService_Expecter) Issue(subjectID any, heroIDs any) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", subjectID, heroIDs)}
}

func (_c *MockTokenService_Issue_Call) Run(run func(subjectID int64, heroIDs []entity.HeroID)) *MockTokenService_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int64), args[1].([]entity.HeroID))
	})

	return _c
}

func (_c *MockTokenService_Issue_Call) Return(_a0 string, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_Issue_Call) RunAndReturn(run func(int64, []entity.HeroID) (string, error)) *MockTokenService_Issue_Call {
	_c.Call.Return(run)

	return _c
}

// Validate provides a mock function.
func (_m *MockTokenService) Validate(tokenString string) (*entity.AuthClaims, error) {
	ret := _m.Called(tokenString)
	if len(ret) == 0 {
		panic("no return value specified for Validate")
	}
	if rf, ok := ret.Get(0).(func(string) (*entity.AuthClaims, error)); ok {
		return rf(tokenString)
	}

	var r0 *entity.AuthClaims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AuthClaims)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockTokenService_Validate_Call struct {
	*mock.Call
}

// Validate is a helper method to define mock.On call.
func (_e *MockTokenService_Expecter) Validate(tokenString any) *MockTokenService_Validate_Call {
	return &MockTokenService_Validate_Call{Call: _e.mock.On("Validate", tokenString)}
}

func (_c *MockTokenService_Validate_Call) Run(run func(tokenString string)) *MockTokenService_Validate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_Validate_Call) Return(_a0 *entity.AuthClaims, _a1 error) *MockTokenService_Validate_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_Validate_Call) RunAndReturn(run func(string) (*entity.AuthClaims, error)) *MockTokenService_Validate_Call {
	_c.Call.Return(run)

	return _c
}

// TTL provides a mock function.
func (_m *MockTokenService) TTL() time.Duration {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for TTL")
	}
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		return rf()
	}

	r0 := ret.Get(0).(time.Duration)

	return r0
}

type MockTokenService_TTL_Call struct {
	*mock.Call
}

// TTL is a helper method to define mock.On call.
func (_e *MockTokenService_Expecter) TTL() *MockTokenService_TTL_Call {
	return &MockTokenService_TTL_Call{Call: _e.mock.On("TTL")}
}

func (_c *MockTokenService_TTL_Call) Run(run func()) *MockTokenService_TTL_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockTokenService_TTL_Call) Return(_a0 time.Duration) *MockTokenService_TTL_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTokenService_TTL_Call) RunAndReturn(run func() time.Duration) *MockTokenService_TTL_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a MockTokenService and asserts its expectations on cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockClaimsAuthorizer is a testify mock of service.ClaimsAuthorizer.
type MockClaimsAuthorizer struct {
	mock.Mock
}

type MockClaimsAuthorizer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClaimsAuthorizer) EXPECT() *MockClaimsAuthorizer_Expecter {
	return &MockClaimsAuthorizer_Expecter{mock: &_m.Mock}
}

// Authorize provides a mock function.
func (_m *MockClaimsAuthorizer) Authorize(claims *entity.AuthClaims, heroID entity.HeroID) bool {
	ret := _m.Called(claims, heroID)
	if len(ret) == 0 {
		panic("no return value specified for Authorize")
	}
	if rf, ok := ret.Get(0).(func(*entity.AuthClaims, entity.HeroID) bool); ok {
		return rf(claims, heroID)
	}

	r0 := ret.Get(0).(bool)

	return r0
}

type MockClaimsAuthorizer_Authorize_Call struct {
	*mock.Call
}

// Authorize is a helper method to define mock.On call.
func (_e *MockClaimsAuthorizer_Expecter) Authorize(claims any, heroID any) *MockClaimsAuthorizer_Authorize_Call {
	return &MockClaimsAuthorizer_Authorize_Call{Call: _e.mock.On("Authorize", claims, heroID)}
}

func (_c *MockClaimsAuthorizer_Authorize_Call) Run(run func(claims *entity.AuthClaims, heroID entity.HeroID)) *MockClaimsAuthorizer_Authorize_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.AuthClaims), args[1].(entity.HeroID))
	})

	return _c
}

func (_c *MockClaimsAuthorizer_Authorize_Call) Return(_a0 bool) *MockClaimsAuthorizer_Authorize_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockClaimsAuthorizer_Authorize_Call) RunAndReturn(run func(*entity.AuthClaims, entity.HeroID) bool) *MockClaimsAuthorizer_Authorize_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockClaimsAuthorizer creates a MockClaimsAuthorizer and asserts its expectations on cleanup.
func NewMockClaimsAuthorizer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClaimsAuthorizer {
	m := &MockClaimsAuthorizer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishAccountEvent provides a mock function.
func (_m *MockEventPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	ret := _m.Called(ctx, event)
	if len(ret) == 0 {
		panic("no return value specified for PublishAccountEvent")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *service.AccountEvent) error); ok {
		return rf(ctx, event)
	}

	r0 := ret.Error(0)

	return r0
}

type MockEventPublisher_PublishAccountEvent_Call struct {
	*mock.Call
}

// PublishAccountEvent is a helper method to define mock.On call.
func (_e *MockEventPublisher_Expecter) PublishAccountEvent(ctx any, event any) *MockEventPublisher_PublishAccountEvent_Call {
	return &MockEventPublisher_PublishAccountEvent_Call{Call: _e.mock.On("PublishAccountEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishAccountEvent_Call) Run(run func(ctx context.Context, event *service.AccountEvent)) *MockEventPublisher_PublishAccountEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.AccountEvent))
	})

	return _c
}

func (_c *MockEventPublisher_PublishAccountEvent_Call) Return(_a0 error) *MockEventPublisher_PublishAccountEvent_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_PublishAccountEvent_Call) RunAndReturn(run func(context.Context, *service.AccountEvent) error) *MockEventPublisher_PublishAccountEvent_Call {
	_c.Call.Return(run)

	return _c
}

// Close provides a mock function.
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for Close")
	}
	if rf, ok := ret.Get(0).(func() error); ok {
		return rf()
	}

	r0 := ret.Error(0)

	return r0
}

type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call.
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockEventPublisher creates a MockEventPublisher and asserts its expectations on cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
