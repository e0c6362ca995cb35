package service

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// IssueAccessToken provides a mock function with given fields: userID, email, accountType
func (_m *MockTokenService) IssueAccessToken(userID uuid.UUID, email string, accountType entity.AccountType) (string, error) {
	ret := _m.Called(userID, email, accountType)

	if len(ret) == 0 {
		panic("no return value specified for IssueAccessToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID, string, entity.AccountType) (string, error)); ok {
		return rf(userID, email, accountType)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID, string, entity.AccountType) string); ok {
		r0 = rf(userID, email, accountType)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID, string, entity.AccountType) error); ok {
		r1 = rf(userID, email, accountType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_IssueAccessToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IssueAccessToken'
type MockTokenService_IssueAccessToken_Call struct {
	*mock.Call
}

// IssueAccessToken is a helper method to define mock.On call
//   - userID uuid.UUID
//   - email string
//   - accountType entity.AccountType
func (_e *MockTokenService_Expecter) IssueAccessToken(userID interface{}, email interface{}, accountType interface{}) *MockTokenService_IssueAccessToken_Call {
	return &MockTokenService_IssueAccessToken_Call{Call: _e.mock.On("IssueAccessToken", userID, email, accountType)}
}

func (_c *MockTokenService_IssueAccessToken_Call) Run(run func(userID uuid.UUID, email string, accountType entity.AccountType)) *MockTokenService_IssueAccessToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID), args[1].(string), args[2].(entity.AccountType))
	})
	return _c
}

func (_c *MockTokenService_IssueAccessToken_Call) Return(_a0 string, _a1 error) *MockTokenService_IssueAccessToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_IssueAccessToken_Call) RunAndReturn(run func(uuid.UUID, string, entity.AccountType) (string, error)) *MockTokenService_IssueAccessToken_Call {
	_c.Call.Return(run)
	return _c
}

// IssueRefreshToken provides a mock function with given fields: userID
func (_m *MockTokenService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for IssueRefreshToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID) (string, error)); ok {
		return rf(userID)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID) string); ok {
		r0 = rf(userID)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID) error); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_IssueRefreshToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IssueRefreshToken'
type MockTokenService_IssueRefreshToken_Call struct {
	*mock.Call
}

// IssueRefreshToken is a helper method to define mock.On call
//   - userID uuid.UUID
func (_e *MockTokenService_Expecter) IssueRefreshToken(userID interface{}) *MockTokenService_IssueRefreshToken_Call {
	return &MockTokenService_IssueRefreshToken_Call{Call: _e.mock.On("IssueRefreshToken", userID)}
}

func (_c *MockTokenService_IssueRefreshToken_Call) Run(run func(userID uuid.UUID)) *MockTokenService_IssueRefreshToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID))
	})
	return _c
}

func (_c *MockTokenService_IssueRefreshToken_Call) Return(_a0 string, _a1 error) *MockTokenService_IssueRefreshToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_IssueRefreshToken_Call) RunAndReturn(run func(uuid.UUID) (string, error)) *MockTokenService_IssueRefreshToken_Call {
	_c.Call.Return(run)
	return _c
}

// IssueTokenPair provides a mock function with given fields: user
func (_m *MockTokenService) IssueTokenPair(user *entity.User) (*service.TokenPair, error) {
	ret := _m.Called(user)

	if len(ret) == 0 {
		panic("no return value specified for IssueTokenPair")
	}

	var r0 *service.TokenPair
	var r1 error
	if rf, ok := ret.Get(0).(func(*entity.User) (*service.TokenPair, error)); ok {
		return rf(user)
	}
	if rf, ok := ret.Get(0).(func(*entity.User) *service.TokenPair); ok {
		r0 = rf(user)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.TokenPair)
		}
	}

	if rf, ok := ret.Get(1).(func(*entity.User) error); ok {
		r1 = rf(user)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_IssueTokenPair_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IssueTokenPair'
type MockTokenService_IssueTokenPair_Call struct {
	*mock.Call
}

// IssueTokenPair is a helper method to define mock.On call
//   - user *entity.User
func (_e *MockTokenService_Expecter) IssueTokenPair(user interface{}) *MockTokenService_IssueTokenPair_Call {
	return &MockTokenService_IssueTokenPair_Call{Call: _e.mock.On("IssueTokenPair", user)}
}

func (_c *MockTokenService_IssueTokenPair_Call) Run(run func(user *entity.User)) *MockTokenService_IssueTokenPair_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.User))
	})
	return _c
}

func (_c *MockTokenService_IssueTokenPair_Call) Return(_a0 *service.TokenPair, _a1 error) *MockTokenService_IssueTokenPair_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_IssueTokenPair_Call) RunAndReturn(run func(*entity.User) (*service.TokenPair, error)) *MockTokenService_IssueTokenPair_Call {
	_c.Call.Return(run)
	return _c
}

// VerifyAccessToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for VerifyAccessToken")
	}

	var r0 *service.AccessClaims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.AccessClaims, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *service.AccessClaims); ok {
		r0 = rf(tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.AccessClaims)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_VerifyAccessToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyAccessToken'
type MockTokenService_VerifyAccessToken_Call struct {
	*mock.Call
}

// VerifyAccessToken is a helper method to define mock.On call
//   - tokenString string
func (_e *MockTokenService_Expecter) VerifyAccessToken(tokenString interface{}) *MockTokenService_VerifyAccessToken_Call {
	return &MockTokenService_VerifyAccessToken_Call{Call: _e.mock.On("VerifyAccessToken", tokenString)}
}

func (_c *MockTokenService_VerifyAccessToken_Call) Run(run func(tokenString string)) *MockTokenService_VerifyAccessToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_VerifyAccessToken_Call) Return(_a0 *service.AccessClaims, _a1 error) *MockTokenService_VerifyAccessToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_VerifyAccessToken_Call) RunAndReturn(run func(string) (*service.AccessClaims, error)) *MockTokenService_VerifyAccessToken_Call {
	_c.Call.Return(run)
	return _c
}

// VerifyRefreshToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) VerifyRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for VerifyRefreshToken")
	}

	var r0 *service.RefreshClaims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.RefreshClaims, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *service.RefreshClaims); ok {
		r0 = rf(tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.RefreshClaims)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_VerifyRefreshToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyRefreshToken'
type MockTokenService_VerifyRefreshToken_Call struct {
	*mock.Call
}

// VerifyRefreshToken is a helper method to define mock.On call
//   - tokenString string
func (_e *MockTokenService_Expecter) VerifyRefreshToken(tokenString interface{}) *MockTokenService_VerifyRefreshToken_Call {
	return &MockTokenService_VerifyRefreshToken_Call{Call: _e.mock.On("VerifyRefreshToken", tokenString)}
}

func (_c *MockTokenService_VerifyRefreshToken_Call) Run(run func(tokenString string)) *MockTokenService_VerifyRefreshToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_VerifyRefreshToken_Call) Return(_a0 *service.RefreshClaims, _a1 error) *MockTokenService_VerifyRefreshToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_VerifyRefreshToken_Call) RunAndReturn(run func(string) (*service.RefreshClaims, error)) *MockTokenService_VerifyRefreshToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
