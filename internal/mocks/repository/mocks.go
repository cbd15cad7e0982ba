// Package repository holds testify mocks shared by the use case and delivery tests.
package repository

import (
	"context"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function.
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)
	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	r0 := ret.Error(0)

	return r0
}

type MockTransactionManager_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call.
func (_e *MockTransactionManager_Expecter) Execute(ctx any, fn any) *MockTransactionManager_Execute_Call {
	return &MockTransactionManager_Execute_Call{Call: _e.mock.On("Execute", ctx, fn)}
}

func (_c *MockTransactionManager_Execute_Call) Run(run func(ctx context.Context, fn func(repository.RepositoryFactory) error)) *MockTransactionManager_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(repository.RepositoryFactory) error))
	})

	return _c
}

func (_c *MockTransactionManager_Execute_Call) Return(_a0 error) *MockTransactionManager_Execute_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTransactionManager_Execute_Call) RunAndReturn(run func(context.Context, func(repository.RepositoryFactory) error) error) *MockTransactionManager_Execute_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTransactionManager creates a MockTransactionManager and asserts its expectations on cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// UserRepo provides a mock function.
func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for UserRepo")
	}
	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		return rf()
	}

	var r0 repository.UserRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.UserRepository)
	}

	return r0
}

type MockRepositoryFactory_UserRepo_Call struct {
	*mock.Call
}

// UserRepo is a helper method to define mock.On call.
func (_e *MockRepositoryFactory_Expecter) UserRepo() *MockRepositoryFactory_UserRepo_Call {
	return &MockRepositoryFactory_UserRepo_Call{Call: _e.mock.On("UserRepo")}
}

func (_c *MockRepositoryFactory_UserRepo_Call) Run(run func()) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(run)

	return _c
}

// HeroRepo provides a mock function.
func (_m *MockRepositoryFactory) HeroRepo() repository.HeroRepository {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for HeroRepo")
	}
	if rf, ok := ret.Get(0).(func() repository.HeroRepository); ok {
		return rf()
	}

	var r0 repository.HeroRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.HeroRepository)
	}

	return r0
}

type MockRepositoryFactory_HeroRepo_Call struct {
	*mock.Call
}

// HeroRepo is a helper method to define mock.On call.
func (_e *MockRepositoryFactory_Expecter) HeroRepo() *MockRepositoryFactory_HeroRepo_Call {
	return &MockRepositoryFactory_HeroRepo_Call{Call: _e.mock.On("HeroRepo")}
}

func (_c *MockRepositoryFactory_HeroRepo_Call) Run(run func()) *MockRepositoryFactory_HeroRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_HeroRepo_Call) Return(_a0 repository.HeroRepository) *MockRepositoryFactory_HeroRepo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_HeroRepo_Call) RunAndReturn(run func() repository.HeroRepository) *MockRepositoryFactory_HeroRepo_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockRepositoryFactory creates a MockRepositoryFactory and asserts its expectations on cleanup.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

// FindByUsername provides a mock function.
func (_m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)
	if len(ret) == 0 {
		panic("no return value specified for FindByUsername")
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.User, error)); ok {
		return rf(ctx, username)
	}

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockUserRepository_FindByUsername_Call struct {
	*mock.Call
}

// FindByUsername is a helper method to define mock.On call.
func (_e *MockUserRepository_Expecter) FindByUsername(ctx any, username any) *MockUserRepository_FindByUsername_Call {
	return &MockUserRepository_FindByUsername_Call{Call: _e.mock.On("FindByUsername", ctx, username)}
}

func (_c *MockUserRepository_FindByUsername_Call) Run(run func(ctx context.Context, username string)) *MockUserRepository_FindByUsername_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockUserRepository_FindByUsername_Call) Return(_a0 *entity.User, _a1 error) *MockUserRepository_FindByUsername_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockUserRepository_FindByUsername_Call) RunAndReturn(run func(context.Context, string) (*entity.User, error)) *MockUserRepository_FindByUsername_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function.
func (_m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*entity.User, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockUserRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call.
func (_e *MockUserRepository_Expecter) FindByID(ctx any, id any) *MockUserRepository_FindByID_Call {
	return &MockUserRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockUserRepository_FindByID_Call) Run(run func(ctx context.Context, id int64)) *MockUserRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockUserRepository_FindByID_Call) Return(_a0 *entity.User, _a1 error) *MockUserRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockUserRepository_FindByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.User, error)) *MockUserRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function.
func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)
	if len(ret) == 0 {
		panic("no return value specified for Create")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.User) error); ok {
		return rf(ctx, user)
	}

	r0 := ret.Error(0)

	return r0
}

type MockUserRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call.
func (_e *MockUserRepository_Expecter) Create(ctx any, user any) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: _e.mock.On("Create", ctx, user)}
}

func (_c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entity.User)) *MockUserRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.User))
	})

	return _c
}

func (_c *MockUserRepository_Create_Call) Return(_a0 error) *MockUserRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUserRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.User) error) *MockUserRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockUserRepository creates a MockUserRepository and asserts its expectations on cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHeroRepository is a testify mock of repository.HeroRepository.
type MockHeroRepository struct {
	mock.Mock
}

type MockHeroRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHeroRepository) EXPECT() *MockHeroRepository_Expecter {
	return &MockHeroRepository_Expecter{mock: &_m.Mock}
}

// OwnedHeroIDs provides a mock function.
func (_m *MockHeroRepository) OwnedHeroIDs(ctx context.Context, userID int64) ([]entity.HeroID, error) {
	ret := _m.Called(ctx, userID)
	if len(ret) == 0 {
		panic("no return value specified for OwnedHeroIDs")
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]entity.HeroID, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []entity.HeroID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.HeroID)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockHeroRepository_OwnedHeroIDs_Call struct {
	*mock.Call
}

// OwnedHeroIDs is a helper method to define mock.On call.
func (_e *MockHeroRepository_Expecter) OwnedHeroIDs(ctx any, userID any) *MockHeroRepository_OwnedHeroIDs_Call {
	return &MockHeroRepository_OwnedHeroIDs_Call{Call: _e.mock.On("OwnedHeroIDs", ctx, userID)}
}

func (_c *MockHeroRepository_OwnedHeroIDs_Call) Run(run func(ctx context.Context, userID int64)) *MockHeroRepository_OwnedHeroIDs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockHeroRepository_OwnedHeroIDs_Call) Return(_a0 []entity.HeroID, _a1 error) *MockHeroRepository_OwnedHeroIDs_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHeroRepository_OwnedHeroIDs_Call) RunAndReturn(run func(context.Context, int64) ([]entity.HeroID, error)) *MockHeroRepository_OwnedHeroIDs_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function.
func (_m *MockHeroRepository) FindByID(ctx context.Context, id entity.HeroID) (*entity.Hero, error) {
	ret := _m.Called(ctx, id)
	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.HeroID) (*entity.Hero, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Hero
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Hero)
	}
	r1 := ret.Error(1)

	return r0, r1
}

type MockHeroRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call.
func (_e *MockHeroRepository_Expecter) FindByID(ctx any, id any) *MockHeroRepository_FindByID_Call {
	return &MockHeroRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockHeroRepository_FindByID_Call) Run(run func(ctx context.Context, id entity.HeroID)) *MockHeroRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.HeroID))
	})

	return _c
}

func (_c *MockHeroRepository_FindByID_Call) Return(_a0 *entity.Hero, _a1 error) *MockHeroRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHeroRepository_FindByID_Call) RunAndReturn(run func(context.Context, entity.HeroID) (*entity.Hero, error)) *MockHeroRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function.
func (_m *MockHeroRepository) Create(ctx context.Context, hero *entity.Hero) error {
	ret := _m.Called(ctx, hero)
	if len(ret) == 0 {
		panic("no return value specified for Create")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Hero) error); ok {
		return rf(ctx, hero)
	}

	r0 := ret.Error(0)

	return r0
}

type MockHeroRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call.
func (_e *MockHeroRepository_Expecter) Create(ctx any, hero any) *MockHeroRepository_Create_Call {
	return &MockHeroRepository_Create_Call{Call: _e.mock.On("Create", ctx, hero)}
}

func (_c *MockHeroRepository_Create_Call) Run(run func(ctx context.Context, hero *entity.Hero)) *MockHeroRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Hero))
	})

	return _c
}

func (_c *MockHeroRepository_Create_Call) Return(_a0 error) *MockHeroRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockHeroRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Hero) error) *MockHeroRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// UpdateName provides a mock function.
func (_m *MockHeroRepository) UpdateName(ctx context.Context, id entity.HeroID, name string) error {
	ret := _m.Called(ctx, id, name)
	if len(ret) == 0 {
		panic("no return value specified for UpdateName")
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.HeroID, string) error); ok {
		return rf(ctx, id, name)
	}

	r0 := ret.Error(0)

	return r0
}

type MockHeroRepository_UpdateName_Call struct {
	*mock.Call
}

// UpdateName is a helper method to define mock.On call.
func (_e *MockHeroRepository_Expecter) UpdateName(ctx any, id any, name any) *MockHeroRepository_UpdateName_Call {
	return &MockHeroRepository_UpdateName_Call{Call: _e.mock.On("UpdateName", ctx, id, name)}
}

func (_c *MockHeroRepository_UpdateName_Call) Run(run func(ctx context.Context, id entity.HeroID, name string)) *MockHeroRepository_UpdateName_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.HeroID), args[2].(string))
	})

	return _c
}

func (_c *MockHeroRepository_UpdateName_Call) Return(_a0 error) *MockHeroRepository_UpdateName_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockHeroRepository_UpdateName_Call) RunAndReturn(run func(context.Context, entity.HeroID, string) error) *MockHeroRepository_UpdateName_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockHeroRepository creates a MockHeroRepository and asserts its expectations on cleanup.
func NewMockHeroRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHeroRepository {
	m := &MockHeroRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthChecker is a testify mock of repository.HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

type MockHealthChecker_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHealthChecker) EXPECT() *MockHealthChecker_Expecter {
	return &MockHealthChecker_Expecter{mock: &_m.Mock}
}

// Ping provides a mock function.
func (_m *MockHealthChecker) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		return rf(ctx)
	}

	r0 := ret.Error(0)

	return r0
}

type MockHealthChecker_Ping_Call struct {
	*mock.Call
}

// Ping is a helper method to define mock.On call.
func (_e *MockHealthChecker_Expecter) Ping(ctx any) *MockHealthChecker_Ping_Call {
	return &MockHealthChecker_Ping_Call{Call: _e.mock.On("Ping", ctx)}
}

func (_c *MockHealthChecker_Ping_Call) Run(run func(ctx context.Context)) *MockHealthChecker_Ping_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockHealthChecker_Ping_Call) Return(_a0 error) *MockHealthChecker_Ping_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockHealthChecker_Ping_Call) RunAndReturn(run func(context.Context) error) *MockHealthChecker_Ping_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockHealthChecker creates a MockHealthChecker and asserts its expectations on cleanup.
func NewMockHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
