package application

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/ports/input"
	"raceboard/internal/ports/output"
)

var (
	_ input.OrganizationUseCase = (*OrganizationService)(nil)
	_ input.RankingUseCase      = (*RankingService)(nil)
)

type OrganizationService struct {
	orgRepo       output.OrganizationRepository
	procedureRepo output.ProcedureRepository
	telemetry
}

func NewOrganizationService(
	orgRepo output.OrganizationRepository,
	procedureRepo output.ProcedureRepository,
	log *zap.SugaredLogger,
	tracer trace.Tracer,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:       orgRepo,
		procedureRepo: procedureRepo,
		telemetry:     newTelemetry(log, tracer),
	}
}

// Organization returns the organization with its event count, or nil.
func (s *OrganizationService) Organization(ctx context.Context, organizationID string) (*entities.Organization, error) {
	return withTelemetry(s.telemetry, ctx, "Organization", organizationID, func(ctx context.Context) (*entities.Organization, error) {
		if organizationID == "" {
			return nil, domain.ErrNotFound
		}
		return s.orgRepo.FindByPublicID(ctx, organizationID)
	})
}

// CompleteOwnerSignup binds the invited owner to actorAuthID and activates
// the organization. Both happen or neither does.
func (s *OrganizationService) CompleteOwnerSignup(ctx context.Context, actorAuthID string, payload entities.OwnerSignup) (entities.OwnerSignupResult, error) {
	return withWriteTelemetry(s.telemetry, ctx, "CompleteOwnerSignup", payload.OrganizationPublicID, func(ctx context.Context) (entities.OwnerSignupResult, error) {
		if err := validatePayload(payload); err != nil {
			return entities.OwnerSignupResult{}, err
		}
		res, err := s.procedureRepo.CompleteOwnerSignup(ctx, actorAuthID, payload)
		if err != nil {
			return entities.OwnerSignupResult{}, err
		}
		s.log.Infow("owner signup completed", "organization", res.OrganizationID, "user", res.UserID)
		return res, nil
	})
}

type RankingService struct {
	rankingRepo output.RankingRepository
	telemetry
}

func NewRankingService(rankingRepo output.RankingRepository, log *zap.SugaredLogger, tracer trace.Tracer) *RankingService {
	return &RankingService{rankingRepo: rankingRepo, telemetry: newTelemetry(log, tracer)}
}

// RankingPoints returns the point table of a ranking system ordered by
// place, or nil when the system does not exist.
func (s *RankingService) RankingPoints(ctx context.Context, rankingSystemID string) ([]entities.RankingPoint, error) {
	return withTelemetry(s.telemetry, ctx, "RankingPoints", rankingSystemID, func(ctx context.Context) ([]entities.RankingPoint, error) {
		if rankingSystemID == "" {
			return nil, domain.ErrNotFound
		}
		return s.rankingRepo.PointsBySystem(ctx, rankingSystemID)
	})
}
