package queries_test

import (
	"context"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/core/domain/model/department"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

var (
	admin   = kernel.Caller{ID: 1, Role: kernel.RoleAdmin}
	manager = kernel.Caller{ID: 2, Role: kernel.RoleManager}
	client  = kernel.Caller{ID: 3, Role: kernel.RoleClient}
)

type MockPackageRepository struct {
	mock.Mock
	ports.PackageRepository
}

func (m *MockPackageRepository) GetView(ctx context.Context, id kernel.UUID) (parcel.View, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(parcel.View), args.Error(1)
}

func (m *MockPackageRepository) List(
	ctx context.Context,
	filter ports.PackageFilter,
	p pagination.Request,
) (pagination.Page[parcel.View], error) {
	args := m.Called(ctx, filter, p)
	return args.Get(0).(pagination.Page[parcel.View]), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
	ports.UserRepository
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByPhoneNumber(ctx context.Context, phone string) (*user.User, error) {
	args := m.Called(ctx, phone)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, p pagination.Request) (pagination.Page[*user.User], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[*user.User]), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
	ports.DepartmentRepository
}

func (m *MockDepartmentRepository) List(
	ctx context.Context,
	p pagination.Request,
) (pagination.Page[*department.Department], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[*department.Department]), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
	ports.CategoryRepository
}

func (m *MockCategoryRepository) Get(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) List(ctx context.Context) ([]parcel.Status, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]parcel.Status)
	return s, args.Error(1)
}

type MockStatusCache struct{ mock.Mock }

func (m *MockStatusCache) Get(ctx context.Context) ([]parcel.Status, bool, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]parcel.Status)
	return s, args.Bool(1), args.Error(2)
}

func (m *MockStatusCache) Set(ctx context.Context, statuses []parcel.Status) error {
	return m.Called(ctx, statuses).Error(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(claims ports.Claims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}
