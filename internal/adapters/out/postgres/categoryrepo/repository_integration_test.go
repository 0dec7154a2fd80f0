package categoryrepo_test

import (
	"context"
	"testing"

	"parcels/internal/adapters/out/postgres/categoryrepo"
	"parcels/internal/adapters/out/postgres/pgtest"
	"parcels/internal/core/domain/model/category"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/pagination"

	"github.com/stretchr/testify/suite"
)

type CategoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *categoryrepo.GormCategoryRepository
}

func (suite *CategoryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CategoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = categoryrepo.NewGormCategoryRepository(suite.database.DB)
}

func (suite *CategoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestAddAndRename() {
	ctx := context.Background()
	c := suite.newCategory("Documents")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	changed, err := c.Rename("Fragile")
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(suite.repository.Update(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Fragile", loaded.Name())
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestAdd_DuplicateName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCategory("Documents")))

	err := suite.repository.Add(ctx, suite.newCategory("Documents"))

	var unique *errs.UniqueConstraintViolationError
	suite.Require().ErrorAs(err, &unique)
	suite.Equal("name", unique.Field)
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestUpdate_RenameToTakenName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCategory("Documents")))
	c := suite.newCategory("Fragile")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	_, err := c.Rename("Documents")
	suite.Require().NoError(err)

	suite.ErrorIs(suite.repository.Update(ctx, c), errs.ErrUniqueConstraintViolation)
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestDeleteExistsList() {
	ctx := context.Background()
	first := suite.newCategory("Documents")
	second := suite.newCategory("Fragile")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Require().NoError(suite.repository.Delete(ctx, first.ID()))

	exists, err := suite.repository.Exists(ctx, first.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	page, err := pagination.NewRequest(1, 10)
	suite.Require().NoError(err)
	result, err := suite.repository.List(ctx, page)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal(second.ID(), result.Items[0].ID())

	_, err = suite.repository.Get(ctx, first.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CategoryRepositoryIntegrationTestSuite) newCategory(name string) *category.Category {
	c, err := category.NewCategory(name)
	suite.Require().NoError(err)
	return c
}

func TestCategoryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(CategoryRepositoryIntegrationTestSuite))
}
