package services

import (
	"context"
	"time"

	"github.com/colophon-press/colophon/modules/catalogue/domain/issue"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

// IssueService manages the composite-keyed series/work edge. An issue may
// only link a series and a work belonging to the same imprint.
type IssueService struct {
	*Crud[issue.Issue, issue.NewIssue, issue.PatchIssue, issue.Key, issue.Field]
}

func NewIssueService(bus eventbus.EventBus, owners *persistence.OwnershipResolver, lookups *persistence.LookupRepository) *IssueService {
	return &IssueService{
		Crud: &Crud[issue.Issue, issue.NewIssue, issue.PatchIssue, issue.Key, issue.Field]{
			entity:   "issue",
			repo:     persistence.NewIssueRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n issue.NewIssue, now time.Time) issue.Issue {
				return n.Entity(now)
			},
			patchKey: func(p issue.PatchIssue) issue.Key { return p.PatchKey() },
			applyPatch: func(p issue.PatchIssue, current issue.Issue, now time.Time) issue.Issue {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n issue.NewIssue) error {
				return canEditOwner(ctx, owners, a, persistence.KindSeries, n.SeriesID)
			},
			updateGate: func(ctx context.Context, a access.Access, current issue.Issue, _ issue.PatchIssue) error {
				return canEditOwner(ctx, owners, a, persistence.KindSeries, current.SeriesID)
			},
			deleteGate: func(ctx context.Context, a access.Access, current issue.Issue) error {
				return canEditOwner(ctx, owners, a, persistence.KindSeries, current.SeriesID)
			},
			preCreate: func(ctx context.Context, n issue.NewIssue) error {
				return checkIssueImprints(ctx, lookups, n.SeriesID, n.WorkID)
			},
		},
	}
}
