package service

import (
	"context"
	"io"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a mock type for the FileStorage type
type MockFileStorage struct {
	mock.Mock
}

type MockFileStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFileStorage) EXPECT() *MockFileStorage_Expecter {
	return &MockFileStorage_Expecter{mock: &_m.Mock}
}

// Save provides a mock function with given fields: ctx, name, r, contentType
func (_m *MockFileStorage) Save(ctx context.Context, name string, r io.Reader, contentType string) (*service.ObjectInfo, error) {
	ret := _m.Called(ctx, name, r, contentType)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 *service.ObjectInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, string) (*service.ObjectInfo, error)); ok {
		return rf(ctx, name, r, contentType)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, string) *service.ObjectInfo); ok {
		r0 = rf(ctx, name, r, contentType)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.ObjectInfo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, io.Reader, string) error); ok {
		r1 = rf(ctx, name, r, contentType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFileStorage_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockFileStorage_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
//   - r io.Reader
//   - contentType string
func (_e *MockFileStorage_Expecter) Save(ctx interface{}, name interface{}, r interface{}, contentType interface{}) *MockFileStorage_Save_Call {
	return &MockFileStorage_Save_Call{Call: _e.mock.On("Save", ctx, name, r, contentType)}
}

func (_c *MockFileStorage_Save_Call) Run(run func(ctx context.Context, name string, r io.Reader, contentType string)) *MockFileStorage_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(io.Reader), args[3].(string))
	})
	return _c
}

func (_c *MockFileStorage_Save_Call) Return(_a0 *service.ObjectInfo, _a1 error) *MockFileStorage_Save_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFileStorage_Save_Call) RunAndReturn(run func(context.Context, string, io.Reader, string) (*service.ObjectInfo, error)) *MockFileStorage_Save_Call {
	_c.Call.Return(run)
	return _c
}

// Open provides a mock function with given fields: ctx, name
func (_m *MockFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, *service.ObjectInfo, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for Open")
	}

	var r0 io.ReadCloser
	var r1 *service.ObjectInfo
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (io.ReadCloser, *service.ObjectInfo, error)); ok {
		return rf(ctx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) io.ReadCloser); ok {
		r0 = rf(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(io.ReadCloser)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) *service.ObjectInfo); ok {
		r1 = rf(ctx, name)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(*service.ObjectInfo)
		}
	}

	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, name)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockFileStorage_Open_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Open'
type MockFileStorage_Open_Call struct {
	*mock.Call
}

// Open is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockFileStorage_Expecter) Open(ctx interface{}, name interface{}) *MockFileStorage_Open_Call {
	return &MockFileStorage_Open_Call{Call: _e.mock.On("Open", ctx, name)}
}

func (_c *MockFileStorage_Open_Call) Run(run func(ctx context.Context, name string)) *MockFileStorage_Open_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockFileStorage_Open_Call) Return(_a0 io.ReadCloser, _a1 *service.ObjectInfo, _a2 error) *MockFileStorage_Open_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockFileStorage_Open_Call) RunAndReturn(run func(context.Context, string) (io.ReadCloser, *service.ObjectInfo, error)) *MockFileStorage_Open_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockFileStorage creates a new instance of MockFileStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFileStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileStorage {
	mock := &MockFileStorage{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
