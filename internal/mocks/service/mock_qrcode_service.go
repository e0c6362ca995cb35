package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GenerateProductQR provides a mock function with given fields: productID
func (_m *MockQRCodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	ret := _m.Called(productID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateProductQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID) ([]byte, error)); ok {
		return rf(productID)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID) []byte); ok {
		r0 = rf(productID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID) error); ok {
		r1 = rf(productID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_GenerateProductQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateProductQR'
type MockQRCodeService_GenerateProductQR_Call struct {
	*mock.Call
}

// GenerateProductQR is a helper method to define mock.On call
//   - productID uuid.UUID
func (_e *MockQRCodeService_Expecter) GenerateProductQR(productID interface{}) *MockQRCodeService_GenerateProductQR_Call {
	return &MockQRCodeService_GenerateProductQR_Call{Call: _e.mock.On("GenerateProductQR", productID)}
}

func (_c *MockQRCodeService_GenerateProductQR_Call) Run(run func(productID uuid.UUID)) *MockQRCodeService_GenerateProductQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID))
	})
	return _c
}

func (_c *MockQRCodeService_GenerateProductQR_Call) Return(_a0 []byte, _a1 error) *MockQRCodeService_GenerateProductQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_GenerateProductQR_Call) RunAndReturn(run func(uuid.UUID) ([]byte, error)) *MockQRCodeService_GenerateProductQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	mock := &MockQRCodeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
