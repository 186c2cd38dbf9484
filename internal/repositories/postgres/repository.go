package postgres

import (
	"context"

	"github.com/humanglue/glueiq-service/internal/repositories"
	"gorm.io/gorm"
)

type Repository struct {
	db         *gorm.DB
	responses  repositories.ResponseRepository
	results    repositories.ResultRepository
	benchmarks repositories.BenchmarkRepository
}

// NewRepository wires all PostgreSQL repositories over one gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:         db,
		responses:  NewResponsePostgreSQL(db),
		results:    NewResultPostgreSQL(db),
		benchmarks: NewBenchmarkPostgreSQL(db),
	}
}

func (r *Repository) Responses() repositories.ResponseRepository { return r.responses }
func (r *Repository) Results() repositories.ResultRepository     { return r.results }
func (r *Repository) Benchmarks() repositories.BenchmarkRepository {
	return r.benchmarks
}

// WithTransaction runs fn against a Repository bound to one transaction.
// gorm commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
