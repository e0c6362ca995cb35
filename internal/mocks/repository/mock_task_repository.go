package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTaskRepository is a mock type for the TaskRepository type
type MockTaskRepository struct {
	mock.Mock
}

type MockTaskRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTaskRepository) EXPECT() *MockTaskRepository_Expecter {
	return &MockTaskRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, task
func (_m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	ret := _m.Called(ctx, task)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Task) error); ok {
		r0 = rf(ctx, task)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTaskRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockTaskRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - task *entity.Task
func (_e *MockTaskRepository_Expecter) Create(ctx interface{}, task interface{}) *MockTaskRepository_Create_Call {
	return &MockTaskRepository_Create_Call{Call: _e.mock.On("Create", ctx, task)}
}

func (_c *MockTaskRepository_Create_Call) Run(run func(ctx context.Context, task *entity.Task)) *MockTaskRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Task))
	})
	return _c
}

func (_c *MockTaskRepository_Create_Call) Return(_a0 error) *MockTaskRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTaskRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Task) error) *MockTaskRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByUser provides a mock function with given fields: ctx, userID
func (_m *MockTaskRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByUser")
	}

	var r0 []*entity.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.Task, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*entity.Task); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskRepository_FindByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByUser'
type MockTaskRepository_FindByUser_Call struct {
	*mock.Call
}

// FindByUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockTaskRepository_Expecter) FindByUser(ctx interface{}, userID interface{}) *MockTaskRepository_FindByUser_Call {
	return &MockTaskRepository_FindByUser_Call{Call: _e.mock.On("FindByUser", ctx, userID)}
}

func (_c *MockTaskRepository_FindByUser_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockTaskRepository_FindByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockTaskRepository_FindByUser_Call) Return(_a0 []*entity.Task, _a1 error) *MockTaskRepository_FindByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskRepository_FindByUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.Task, error)) *MockTaskRepository_FindByUser_Call {
	_c.Call.Return(run)
	return _c
}

// FindByIDForUser provides a mock function with given fields: ctx, id, userID
func (_m *MockTaskRepository) FindByIDForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Task, error) {
	ret := _m.Called(ctx, id, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByIDForUser")
	}

	var r0 *entity.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Task, error)); ok {
		return rf(ctx, id, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Task); ok {
		r0 = rf(ctx, id, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, id, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskRepository_FindByIDForUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByIDForUser'
type MockTaskRepository_FindByIDForUser_Call struct {
	*mock.Call
}

// FindByIDForUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - userID uuid.UUID
func (_e *MockTaskRepository_Expecter) FindByIDForUser(ctx interface{}, id interface{}, userID interface{}) *MockTaskRepository_FindByIDForUser_Call {
	return &MockTaskRepository_FindByIDForUser_Call{Call: _e.mock.On("FindByIDForUser", ctx, id, userID)}
}

func (_c *MockTaskRepository_FindByIDForUser_Call) Run(run func(ctx context.Context, id uuid.UUID, userID uuid.UUID)) *MockTaskRepository_FindByIDForUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockTaskRepository_FindByIDForUser_Call) Return(_a0 *entity.Task, _a1 error) *MockTaskRepository_FindByIDForUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskRepository_FindByIDForUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Task, error)) *MockTaskRepository_FindByIDForUser_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateForUser provides a mock function with given fields: ctx, id, userID, changes
func (_m *MockTaskRepository) UpdateForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID, changes repository.TaskChanges) (*entity.Task, error) {
	ret := _m.Called(ctx, id, userID, changes)

	if len(ret) == 0 {
		panic("no return value specified for UpdateForUser")
	}

	var r0 *entity.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, repository.TaskChanges) (*entity.Task, error)); ok {
		return rf(ctx, id, userID, changes)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, repository.TaskChanges) *entity.Task); ok {
		r0 = rf(ctx, id, userID, changes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, repository.TaskChanges) error); ok {
		r1 = rf(ctx, id, userID, changes)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskRepository_UpdateForUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateForUser'
type MockTaskRepository_UpdateForUser_Call struct {
	*mock.Call
}

// UpdateForUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - userID uuid.UUID
//   - changes repository.TaskChanges
func (_e *MockTaskRepository_Expecter) UpdateForUser(ctx interface{}, id interface{}, userID interface{}, changes interface{}) *MockTaskRepository_UpdateForUser_Call {
	return &MockTaskRepository_UpdateForUser_Call{Call: _e.mock.On("UpdateForUser", ctx, id, userID, changes)}
}

func (_c *MockTaskRepository_UpdateForUser_Call) Run(run func(ctx context.Context, id uuid.UUID, userID uuid.UUID, changes repository.TaskChanges)) *MockTaskRepository_UpdateForUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(repository.TaskChanges))
	})
	return _c
}

func (_c *MockTaskRepository_UpdateForUser_Call) Return(_a0 *entity.Task, _a1 error) *MockTaskRepository_UpdateForUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskRepository_UpdateForUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, repository.TaskChanges) (*entity.Task, error)) *MockTaskRepository_UpdateForUser_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteForUser provides a mock function with given fields: ctx, id, userID
func (_m *MockTaskRepository) DeleteForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Task, error) {
	ret := _m.Called(ctx, id, userID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteForUser")
	}

	var r0 *entity.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Task, error)); ok {
		return rf(ctx, id, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Task); ok {
		r0 = rf(ctx, id, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, id, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskRepository_DeleteForUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteForUser'
type MockTaskRepository_DeleteForUser_Call struct {
	*mock.Call
}

// DeleteForUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - userID uuid.UUID
func (_e *MockTaskRepository_Expecter) DeleteForUser(ctx interface{}, id interface{}, userID interface{}) *MockTaskRepository_DeleteForUser_Call {
	return &MockTaskRepository_DeleteForUser_Call{Call: _e.mock.On("DeleteForUser", ctx, id, userID)}
}

func (_c *MockTaskRepository_DeleteForUser_Call) Run(run func(ctx context.Context, id uuid.UUID, userID uuid.UUID)) *MockTaskRepository_DeleteForUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockTaskRepository_DeleteForUser_Call) Return(_a0 *entity.Task, _a1 error) *MockTaskRepository_DeleteForUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskRepository_DeleteForUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Task, error)) *MockTaskRepository_DeleteForUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTaskRepository creates a new instance of MockTaskRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTaskRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTaskRepository {
	mock := &MockTaskRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
