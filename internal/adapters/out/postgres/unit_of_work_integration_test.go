package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/postgres/pgtest"
	"parcels/internal/core/domain/model/category"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.DepartmentRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow1.PackageRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Error(uow.Rollback(ctx), "rollback after commit reports no active transaction")
	suite.Error(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, err := category.NewCategory("Documents")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CategoryRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))

	exists, err := suite.factory.Create().CategoryRepository().Exists(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllRepositories() {
	ctx := context.Background()
	fixture, err := suite.database.Seed(ctx)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, err := category.NewCategory("Fragile")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CategoryRepository().Add(ctx, c))

	p := fixture.NewPackage(time.Now())
	suite.Require().NoError(uow.PackageRepository().Add(ctx, p))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	exists, err := reader.CategoryRepository().Exists(ctx, c.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	_, err = reader.PackageRepository().Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFailedStatementAbortsTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	first, err := category.NewCategory("Documents")
	suite.Require().NoError(err)
	duplicate, err := category.NewCategory("Documents")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.CategoryRepository().Add(ctx, first))
	suite.ErrorIs(uow.CategoryRepository().Add(ctx, duplicate), errs.ErrUniqueConstraintViolation)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
