package services

import (
	"log/slog"

	"github.com/humanglue/glueiq-service/internal/cache"
	"github.com/humanglue/glueiq-service/internal/events"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/humanglue/glueiq-service/internal/scoring"
	"github.com/humanglue/glueiq-service/internal/validator"
)

// ServiceManager bundles the service layer behind a single access point.
type ServiceManager interface {
	Scoring() ScoringService
	Benchmark() BenchmarkService
	Export() ExportService
}

type serviceManager struct {
	scoring   ScoringService
	benchmark BenchmarkService
	export    ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	scorer *scoring.Scorer,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	scoringService := NewScoringService(repo, scorer, cacheService, publisher, logger, validator)

	return &serviceManager{
		scoring:   scoringService,
		benchmark: NewBenchmarkService(repo, cacheService, logger),
		export:    NewExportService(scoringService, publisher, logger),
	}
}

func (m *serviceManager) Scoring() ScoringService     { return m.scoring }
func (m *serviceManager) Benchmark() BenchmarkService { return m.benchmark }
func (m *serviceManager) Export() ExportService       { return m.export }
