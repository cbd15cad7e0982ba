// Package usecase holds testify mocks shared by the use case and delivery tests.
package usecase

import (
	"context"

	"arena/internal/domain/entity"
	"arena/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// Register provides a mock function.
func (_m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) error {
	ret := _m.Called(ctx, input)
	if len(ret) == 0 {
		panic("no return value specified for Register")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) error); ok {
		return rf(ctx, input)
	}

	r0 := ret.Error(0)

	return r0
}

type MockAuthUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) Register(ctx any, input any) *MockAuthUsecase_Register_Call {
	return &MockAuthUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockAuthUsecase_Register_Call) Run(run func(ctx context.Context, input *usecase.RegisterInput)) *MockAuthUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RegisterInput))
	})

	return _c
}

func (_c *MockAuthUsecase_Register_Call) Return(_a0 error) *MockAuthUsecase_Register_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAuthUsecase_Register_Call) RunAndReturn(run func(context.Context, *usecase.RegisterInput) error) *MockAuthUsecase_Register_Call {
	_c.Call.Return(run)

	return _c
}

// Login provides a mock function.
func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)
	if len(ret) == 0 {
		panic("no return value specified for Login")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}

	var r0 *usecase.LoginOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockAuthUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) Login(ctx any, input any) *MockAuthUsecase_Login_Call {
	return &MockAuthUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAuthUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockAuthUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LoginInput))
	})

	return _c
}

func (_c *MockAuthUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAuthUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)) *MockAuthUsecase_Login_Call {
	_c.Call.Return(run)

	return _c
}

// ValidateBearer provides a mock function.
func (_m *MockAuthUsecase) ValidateBearer(ctx context.Context, token string) (*entity.AuthClaims, error) {
	ret := _m.Called(ctx, token)
	if len(ret) == 0 {
		panic("no return value specified for ValidateBearer")
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.AuthClaims, error)); ok {
		return rf(ctx, token)
	}

	var r0 *entity.AuthClaims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AuthClaims)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockAuthUsecase_ValidateBearer_Call struct {
	*mock.Call
}

// ValidateBearer is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) ValidateBearer(ctx any, token any) *MockAuthUsecase_ValidateBearer_Call {
	return &MockAuthUsecase_ValidateBearer_Call{Call: _e.mock.On("ValidateBearer", ctx, token)}
}

func (_c *MockAuthUsecase_ValidateBearer_Call) Run(run func(ctx context.Context, token string)) *MockAuthUsecase_ValidateBearer_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAuthUsecase_ValidateBearer_Call) Return(_a0 *entity.AuthClaims, _a1 error) *MockAuthUsecase_ValidateBearer_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_ValidateBearer_Call) RunAndReturn(run func(context.Context, string) (*entity.AuthClaims, error)) *MockAuthUsecase_ValidateBearer_Call {
	_c.Call.Return(run)

	return _c
}

// AuthorizeResource provides a mock function.
func (_m *MockAuthUsecase) AuthorizeResource(claims *entity.AuthClaims, heroID entity.HeroID) bool {
	ret := _m.Called(claims, heroID)
	if len(ret) == 0 {
		panic("no return value specified for AuthorizeResource")
	}
	if rf, ok := ret.Get(0).(func(*entity.AuthClaims, entity.HeroID) bool); ok {
		return rf(claims, heroID)
	}

	r0 := ret.Get(0).(bool)

	return r0
}

type MockAuthUsecase_AuthorizeResource_Call struct {
	*mock.Call
}

// AuthorizeResource is a helper method to define mock.On call.
func (_e *MockAuthUsecase_Expecter) AuthorizeResource(claims any, heroID any) *MockAuthUsecase_AuthorizeResource_Call {
	return &MockAuthUsecase_AuthorizeResource_Call{Call: _e.mock.On("AuthorizeResource", claims, heroID)}
}

func (_c *MockAuthUsecase_AuthorizeResource_Call) Run(run func(claims *entity.AuthClaims, heroID entity.HeroID)) *MockAuthUsecase_AuthorizeResource_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.AuthClaims), args[1].(entity.HeroID))
	})

	return _c
}

func (_c *MockAuthUsecase_AuthorizeResource_Call) Return(_a0 bool) *MockAuthUsecase_AuthorizeResource_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAuthUsecase_AuthorizeResource_Call) RunAndReturn(run func(*entity.AuthClaims, entity.HeroID) bool) *MockAuthUsecase_AuthorizeResource_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockAuthUsecase creates a MockAuthUsecase and asserts its expectations on cleanup.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHeroUsecase is a testify mock of usecase.HeroUsecase.
type MockHeroUsecase struct {
	mock.Mock
}

type MockHeroUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHeroUsecase) EXPECT() *MockHeroUsecase_Expecter {
	return &MockHeroUsecase_Expecter{mock: &_m.Mock}
}

// CreateHero provides a mock function.
func (_m *MockHeroUsecase) CreateHero(ctx context.Context, claims *entity.AuthClaims, name string) (*usecase.CreateHeroOutput, error) {
	ret := _m.Called(ctx, claims, name)
	if len(ret) == 0 {
		panic("no return value specified for CreateHero")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.AuthClaims, string) (*usecase.CreateHeroOutput, error)); ok {
		return rf(ctx, claims, name)
	}

	var r0 *usecase.CreateHeroOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.CreateHeroOutput)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockHeroUsecase_CreateHero_Call struct {
	*mock.Call
}

// CreateHero is a helper method to define mock.On call.
func (_e *MockHeroUsecase_Expecter) CreateHero(ctx any, claims any, name any) *MockHeroUsecase_CreateHero_Call {
	return &MockHeroUsecase_CreateHero_Call{Call: _e.mock.On("CreateHero", ctx, claims, name)}
}

func (_c *MockHeroUsecase_CreateHero_Call) Run(run func(ctx context.Context, claims *entity.AuthClaims, name string)) *MockHeroUsecase_CreateHero_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.AuthClaims), args[2].(string))
	})

	return _c
}

func (_c *MockHeroUsecase_CreateHero_Call) Return(_a0 *usecase.CreateHeroOutput, _a1 error) *MockHeroUsecase_CreateHero_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHeroUsecase_CreateHero_Call) RunAndReturn(run func(context.Context, *entity.AuthClaims, string) (*usecase.CreateHeroOutput, error)) *MockHeroUsecase_CreateHero_Call {
	_c.Call.Return(run)

	return _c
}

// GetHero provides a mock function.
func (_m *MockHeroUsecase) GetHero(ctx context.Context, heroID entity.HeroID) (*entity.Hero, error) {
	ret := _m.Called(ctx, heroID)
	if len(ret) == 0 {
		panic("no return value specified for GetHero")
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.HeroID) (*entity.Hero, error)); ok {
		return rf(ctx, heroID)
	}

	var r0 *entity.Hero
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Hero)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockHeroUsecase_GetHero_Call struct {
	*mock.Call
}

// GetHero is a helper method to define mock.On call.
func (_e *MockHeroUsecase_Expecter) GetHero(ctx any, heroID any) *MockHeroUsecase_GetHero_Call {
	return &MockHeroUsecase_GetHero_Call{Call: _e.mock.On("GetHero", ctx, heroID)}
}

func (_c *MockHeroUsecase_GetHero_Call) Run(run func(ctx context.Context, heroID entity.HeroID)) *MockHeroUsecase_GetHero_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.HeroID))
	})

	return _c
}

func (_c *MockHeroUsecase_GetHero_Call) Return(_a0 *entity.Hero, _a1 error) *MockHeroUsecase_GetHero_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHeroUsecase_GetHero_Call) RunAndReturn(run func(context.Context, entity.HeroID) (*entity.Hero, error)) *MockHeroUsecase_GetHero_Call {
	_c.Call.Return(run)

	return _c
}

// RenameHero provides a mock function.
func (_m *MockHeroUsecase) RenameHero(ctx context.Context, claims *entity.AuthClaims, heroID entity.HeroID, name string) (*entity.Hero, error) {
	ret := _m.Called(ctx, claims, heroID, name)
	if len(ret) == 0 {
		panic("no return value specified for RenameHero")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.AuthClaims, entity.HeroID, string) (*entity.Hero, error)); ok {
		return rf(ctx, claims, heroID, name)
	}

	var r0 *entity.Hero
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Hero)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockHeroUsecase_RenameHero_Call struct {
	*mock.Call
}

// RenameHero is a helper method to define mock.On call.
func (_e *MockHeroUsecase_Expecter) RenameHero(ctx any, claims any, heroID any, name any) *MockHeroUsecase_RenameHero_Call {
	return &MockHeroUsecase_RenameHero_Call{Call: _e.mock.On("RenameHero", ctx, claims, heroID, name)}
}

func (_c *MockHeroUsecase_RenameHero_Call) Run(run func(ctx context.Context, claims *entity.AuthClaims, heroID entity.HeroID, name string)) *MockHeroUsecase_RenameHero_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.AuthClaims), args[2].(entity.HeroID), args[3].(string))
	})

	return _c
}

func (_c *MockHeroUsecase_RenameHero_Call) Return(_a0 *entity.Hero, _a1 error) *MockHeroUsecase_RenameHero_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHeroUsecase_RenameHero_Call) RunAndReturn(run func(context.Context, *entity.AuthClaims, entity.HeroID, string) (*entity.Hero, error)) *MockHeroUsecase_RenameHero_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockHeroUsecase creates a MockHeroUsecase and asserts its expectations on cleanup.
func NewMockHeroUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHeroUsecase {
	m := &MockHeroUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
