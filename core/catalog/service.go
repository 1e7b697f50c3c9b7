package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core"
)

type (
	// Repository loads the facet vocabulary from storage.
	Repository interface {
		// QueryStates returns states with their cities, both ordered by name.
		QueryStates(ctx context.Context) ([]State, error)
		// QueryEntityTypes returns the distinct entity type codes, ordered.
		QueryEntityTypes(ctx context.Context) ([]string, error)
		// QueryOwnershipTypes returns the distinct ownership type codes, ordered.
		QueryOwnershipTypes(ctx context.Context) ([]string, error)
		// QueryCourseLookups returns all course lookup rows, ordered by raw code.
		// CourseLookup.Name carries the raw stored code; the service replaces it
		// with the derived display name.
		QueryCourseLookups(ctx context.Context) ([]CourseLookup, error)
	}

	ServiceInterface interface {
		Get(ctx context.Context) (*Catalog, error)
		Refresh(ctx context.Context) (*Catalog, error)
	}

	// Service assembles and caches the Catalog. The catalog is reference data
	// that changes rarely, so a process-wide copy is kept and re-loaded after
	// the configured TTL elapses.
	Service struct {
		repo Repository
		ttl  time.Duration

		mu       sync.RWMutex
		cached   *Catalog
		loadedAt time.Time

		nowFunc func() time.Time // mockable
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{
		repo:    repo,
		ttl:     conf.Catalog.CacheTTL,
		nowFunc: time.Now,
	}
}

// Get returns the cached catalog, loading it on first use or after expiry.
func (svc *Service) Get(ctx context.Context) (*Catalog, error) {
	svc.mu.RLock()
	cached, fresh := svc.cached, svc.isFresh()
	svc.mu.RUnlock()

	if cached != nil && fresh {
		return cached, nil
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	// another request may have refreshed while we waited on the lock
	if svc.cached != nil && svc.isFresh() {
		return svc.cached, nil
	}
	return svc.refreshLocked(ctx)
}

// Refresh reloads the catalog from storage and replaces the cached copy,
// regardless of the TTL.
func (svc *Service) Refresh(ctx context.Context) (*Catalog, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.refreshLocked(ctx)
}

func (svc *Service) refreshLocked(ctx context.Context) (*Catalog, error) {
	cat, err := svc.load(ctx)
	if err != nil {
		if svc.cached != nil {
			// keep serving the stale copy rather than failing the request
			return svc.cached, nil
		}
		return nil, err
	}

	svc.cached = cat
	svc.loadedAt = svc.nowFunc()
	return cat, nil
}

func (svc *Service) isFresh() bool {
	return svc.ttl <= 0 || svc.nowFunc().Sub(svc.loadedAt) < svc.ttl
}

func (svc *Service) load(ctx context.Context) (*Catalog, error) {
	states, err := svc.repo.QueryStates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading states")
	}

	entityCodes, err := svc.repo.QueryEntityTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading entity types")
	}

	ownershipCodes, err := svc.repo.QueryOwnershipTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading ownership types")
	}

	lookups, err := svc.repo.QueryCourseLookups(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading course lookups")
	}
	for i, cl := range lookups {
		lookups[i].Name = CourseDisplayName(cl.CourseCode, cl.Name)
	}

	types, categories, codes := DeriveCourseFacets(lookups)

	return &Catalog{
		Genders:          Genders,
		States:           states,
		EntityTypes:      typeOptions(entityCodes),
		OwnershipTypes:   typeOptions(ownershipCodes),
		CourseTypes:      types,
		CourseCategories: categories,
		CourseCodes:      codes,
		CourseLookups:    lookups,
	}, nil
}

func typeOptions(codes []string) []TypeOption {
	opts := make([]TypeOption, 0, len(codes))
	for _, code := range codes {
		opts = append(opts, TypeOption{Code: code, Label: core.TitleLabel(code)})
	}
	return opts
}
