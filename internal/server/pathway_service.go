package server

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/pathway"
)

// CatalogStore is the slice of persistence the recommendation engine needs.
type CatalogStore interface {
	ListPathways(ctx context.Context) ([]db.Pathway, error)
	ListOrganizations(ctx context.Context) ([]db.Organization, error)
	ListPrograms(ctx context.Context, filters db.ProgramFilters) ([]db.Program, error)
	ListEvents(ctx context.Context) ([]db.Event, error)
}

// PathwayService runs recommendation queries: AI-augmented when a provider
// is configured, deterministic matching otherwise.
type PathwayService struct {
	store   CatalogStore
	advisor *pathway.Advisor
}

// NewPathwayService creates a PathwayService.
func NewPathwayService(store CatalogStore, advisor *pathway.Advisor) *PathwayService {
	return &PathwayService{store: store, advisor: advisor}
}

// loadCatalog fetches all four catalog sections concurrently. Only active
// programs are offered to the recommendation engine.
func (s *PathwayService) loadCatalog(ctx context.Context) (pathway.Catalog, error) {
	var catalog pathway.Catalog
	active := true

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog.Pathways, err = s.store.ListPathways(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog.Organizations, err = s.store.ListOrganizations(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog.Programs, err = s.store.ListPrograms(ctx, db.ProgramFilters{IsActive: &active})
		return err
	})
	g.Go(func() error {
		var err error
		catalog.Events, err = s.store.ListEvents(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return pathway.Catalog{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog, nil
}

// Query answers a questionnaire submission. The AI advisor is tried first;
// when it is unconfigured the deterministic matcher answers instead. Any
// other advisor failure is surfaced to the caller, never silently downgraded
// to deterministic results.
func (s *PathwayService) Query(ctx context.Context, responses pathway.Responses) (pathway.QueryResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return pathway.QueryResponse{}, err
	}

	content, err := s.advisor.Recommend(ctx, responses, catalog)
	if err == nil {
		return pathway.AssembleAI(content), nil
	}

	var notConfigured *pathway.NotConfiguredError
	if errors.As(err, &notConfigured) {
		return pathway.AssembleMatches(pathway.Match(responses, catalog.Pathways)), nil
	}

	return pathway.QueryResponse{}, err
}
