package commands_test

import (
	"context"
	"time"

	"parcels/internal/core/application/usecases/commands"
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
	fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock    = commands.Clock(func() time.Time { return fixedNow })

	admin   = kernel.Caller{ID: 1, Role: kernel.RoleAdmin}
	manager = kernel.Caller{ID: 2, Role: kernel.RoleManager}
	client  = kernel.Caller{ID: 3, Role: kernel.RoleClient}
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
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
func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepository) List(ctx context.Context, p pagination.Request) (pagination.Page[*user.User], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[*user.User]), args.Error(1)
}

type MockDepartmentRepository struct{ mock.Mock }

func (m *MockDepartmentRepository) Add(ctx context.Context, d *department.Department) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDepartmentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockDepartmentRepository) Get(ctx context.Context, id int64) (*department.Department, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*department.Department)
	return d, args.Error(1)
}
func (m *MockDepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockDepartmentRepository) List(
	ctx context.Context,
	p pagination.Request,
) (pagination.Page[*department.Department], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[*department.Department]), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCategoryRepository) Get(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}
func (m *MockCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockCategoryRepository) List(
	ctx context.Context,
	p pagination.Request,
) (pagination.Page[*category.Category], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(pagination.Page[*category.Category]), args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Package)
	return p, args.Error(1)
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
func (m *MockPackageRepository) FindStale(ctx context.Context, cutoff time.Time, limit int) ([]*parcel.Package, error) {
	args := m.Called(ctx, cutoff, limit)
	pkgs, _ := args.Get(0).([]*parcel.Package)
	return pkgs, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct {
	mock.Mock

	users       *MockUserRepository
	departments *MockDepartmentRepository
	categories  *MockCategoryRepository
	packages    *MockPackageRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		users:       new(MockUserRepository),
		departments: new(MockDepartmentRepository),
		categories:  new(MockCategoryRepository),
		packages:    new(MockPackageRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UserRepository() ports.UserRepository             { return m.users }
func (m *MockUoW) DepartmentRepository() ports.DepartmentRepository { return m.departments }
func (m *MockUoW) CategoryRepository() ports.CategoryRepository     { return m.categories }
func (m *MockUoW) PackageRepository() ports.PackageRepository       { return m.packages }

// expectTx sets up a transaction that begins and always rolls back; commit is
// expected only when committed is true.
func (m *MockUoW) expectTx(ctx context.Context, committed bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if committed {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Maybe()
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.departments.AssertExpectations(t)
	m.categories.AssertExpectations(t)
	m.packages.AssertExpectations(t)
}

type packageUoWFactory struct{ uow *MockUoW }

func (f packageUoWFactory) Create() commands.PackageUoW { return f.uow }

type userUoWFactory struct{ uow *MockUoW }

func (f userUoWFactory) Create() commands.UserUoW { return f.uow }

type departmentUoWFactory struct{ uow *MockUoW }

func (f departmentUoWFactory) Create() commands.DepartmentUoW { return f.uow }

type categoryUoWFactory struct{ uow *MockUoW }

func (f categoryUoWFactory) Create() commands.CategoryUoW { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}
