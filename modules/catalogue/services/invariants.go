package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/location"
	"github.com/colophon-press/colophon/modules/catalogue/domain/work"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/serrors"
)

// checkIssueImprints enforces that an issue only links a series and a work
// sharing the same imprint.
func checkIssueImprints(ctx context.Context, lookups *persistence.LookupRepository, seriesID, workID uuid.UUID) error {
	seriesImprint, err := lookups.ImprintOfSeries(ctx, seriesID)
	if err != nil {
		return err
	}
	workImprint, err := lookups.ImprintOfWork(ctx, workID)
	if err != nil {
		return err
	}
	if seriesImprint != workImprint {
		return serrors.ErrIssueImprints
	}
	return nil
}

// checkWorkImprintChange blocks moving a work to another imprint while it is
// linked into any series, since that would break the issue invariant.
func checkWorkImprintChange(ctx context.Context, lookups *persistence.LookupRepository, workID uuid.UUID) error {
	count, err := lookups.WorkIssueCount(ctx, workID)
	if err != nil {
		return err
	}
	if count > 0 {
		return serrors.ErrIssueImprints
	}
	return nil
}

// checkChapterPagination rejects the chapter-only page fields on any work
// that is not a book chapter.
func checkChapterPagination(workType work.Type, firstPage, lastPage, pageInterval *string) error {
	if workType == work.TypeBookChapter {
		return nil
	}
	if firstPage != nil || lastPage != nil || pageInterval != nil {
		return serrors.ErrChapterPagination
	}
	return nil
}

// checkNonCanonicalLocation requires that a canonical location already exist
// before any alternate location of the same publication is accepted.
func checkNonCanonicalLocation(ctx context.Context, lookups *persistence.LookupRepository, publicationID uuid.UUID) error {
	exists, err := lookups.CanonicalLocationExists(ctx, publicationID)
	if err != nil {
		return err
	}
	if !exists {
		return serrors.ErrCanonicalLocation
	}
	return nil
}

// checkCanonicalLocationURLs requires both URLs on the canonical location of
// a digital publication. A location carrying both URLs always passes.
func checkCanonicalLocationURLs(ctx context.Context, lookups *persistence.LookupRepository, publicationID uuid.UUID, landingPage, fullTextURL *string) error {
	if landingPage != nil && fullTextURL != nil {
		return nil
	}
	pubType, err := lookups.PublicationTypeOf(ctx, publicationID)
	if err != nil {
		return err
	}
	if pubType.Digital() {
		return serrors.ErrLocationUrl
	}
	return nil
}

func checkLocation(ctx context.Context, lookups *persistence.LookupRepository, publicationID uuid.UUID, landingPage, fullTextURL *string, canonical bool) error {
	if !canonical {
		return checkNonCanonicalLocation(ctx, lookups, publicationID)
	}
	return checkCanonicalLocationURLs(ctx, lookups, publicationID, landingPage, fullTextURL)
}

func locationInvariant(lookups *persistence.LookupRepository) func(context.Context, location.NewLocation) error {
	return func(ctx context.Context, n location.NewLocation) error {
		return checkLocation(ctx, lookups, n.PublicationID, n.LandingPage, n.FullTextURL, n.Canonical)
	}
}
