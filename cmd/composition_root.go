package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/postgres/categoryrepo"
	"parcels/internal/adapters/out/postgres/departmentrepo"
	"parcels/internal/adapters/out/postgres/packagerepo"
	"parcels/internal/adapters/out/postgres/statusrepo"
	"parcels/internal/adapters/out/postgres/userrepo"
	"parcels/internal/adapters/out/security"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/jobs"
	"parcels/internal/pkg/logger"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	hasher     *security.BcryptHasher
	tokens     *security.JWTTokens
	statuses   ports.StatusCache
	log        *logger.Logger
}

// NewCompositionRoot wires the adapters. statuses may be nil when no cache is configured.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, statuses ports.StatusCache, log *logger.Logger) (*CompositionRoot, error) {
	tokens, err := security.NewJWTTokens(security.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure tokens: %w", err)
	}

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
		hasher:     security.NewBcryptHasher(cfg.BcryptCost),
		tokens:     tokens,
		statuses:   statuses,
		log:        log,
	}

	return root, nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) departmentUoWFactory() commands.DepartmentUoWFactory {
	return FuncDepartmentUoWFactory(func() commands.DepartmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) categoryUoWFactory() commands.CategoryUoWFactory {
	return FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	users := userrepo.NewGormUserRepository(c.gormDB)

	return httpin.NewServer(httpin.Handlers{
		Login: queries.NewLoginQueryHandler(users, c.hasher, c.tokens),

		CreateUser: commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.policy, c.hasher),
		UpdateUser: commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.policy, c.hasher),
		UpdateMe:   commands.NewUpdateMeCommandHandler(c.userUoWFactory(), c.policy, c.hasher),
		DeleteUser: commands.NewDeleteUserCommandHandler(c.userUoWFactory(), c.policy),
		Users:      queries.NewUserQueryHandler(users, c.policy),

		Departments:       commands.NewDepartmentCommandHandler(c.departmentUoWFactory(), c.policy),
		DepartmentQueries: queries.NewDepartmentQueryHandler(departmentrepo.NewGormDepartmentRepository(c.gormDB), c.policy),

		Categories:      commands.NewCategoryCommandHandler(c.categoryUoWFactory(), c.policy),
		CategoryQueries: queries.NewCategoryQueryHandler(categoryrepo.NewGormCategoryRepository(c.gormDB), c.policy),

		Statuses: queries.NewListStatusesQueryHandler(statusrepo.NewGormStatusRepository(c.gormDB), c.statuses, c.policy),

		CreatePackage:  commands.NewCreatePackageCommandHandler(c.packageUoWFactory(), c.policy, time.Now),
		UpdatePackage:  commands.NewUpdatePackageCommandHandler(c.packageUoWFactory(), c.policy, time.Now),
		ArchivePackage: commands.NewArchivePackageCommandHandler(c.packageUoWFactory(), c.policy, time.Now),
		Packages:       queries.NewPackageQueryHandler(packagerepo.NewGormPackageRepository(c.gormDB), c.policy),
	}, c.policy, c.tokens)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	handler := commands.NewArchiveStalePackagesCommandHandler(c.packageUoWFactory(), time.Now)

	return jobs.NewJobManager(jobs.ArchiveConfig{
		Schedule:  c.cfg.ArchiveSchedule,
		OlderThan: c.cfg.ArchiveRetention,
		BatchSize: c.cfg.ArchiveBatchSize,
	}, handler, c.log)
}

// Ping reports whether the database is reachable.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncDepartmentUoWFactory func() commands.DepartmentUoW

func (f FuncDepartmentUoWFactory) Create() commands.DepartmentUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}
