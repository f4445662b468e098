// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// queueStream syncs the Up Next queue: journal entries go up, the server
// order comes back.
type queueStream struct {
	journal    store.LocalJournalRepository
	watermarks store.WatermarkRepository
	episodes   store.LocalEpisodeRepository

	resolver  *conflictResolver
	importer  EntityImporter
	projector *stateProjector
}

func (s *queueStream) Collection() models.Collection {
	return models.CollectionUpNext
}

func (s *queueStream) Prepare(ctx context.Context) (preparedCycle, error) {
	watermark, err := s.watermarks.Get(ctx, models.StreamUpNext)
	if err != nil {
		return preparedCycle{}, fmt.Errorf("read watermark: %w", err)
	}

	entries, err := s.journal.ReadAllPending(ctx)
	if err != nil {
		return preparedCycle{}, fmt.Errorf("read journal: %w", err)
	}

	changes := make([]models.SyncChange, 0, len(entries))
	referenced := make([]string, 0, len(entries))
	for _, entry := range entries {
		changes = append(changes, models.ChangeFromEntry(entry))
		if entry.Kind.IsMultiSubject() {
			referenced = append(referenced, entry.Subjects...)
		} else if entry.Kind != models.ChangeRemove {
			referenced = append(referenced, entry.Subject)
		}
	}

	metas, err := episodeMetas(ctx, s.episodes, referenced)
	if err != nil {
		return preparedCycle{}, err
	}

	maxModifiedAtMs, maxID := models.MaxModifiedAtMs(entries)

	return preparedCycle{
		Watermark:       watermark,
		Changes:         changes,
		Episodes:        metas,
		MaxModifiedAtMs: maxModifiedAtMs,
		MaxID:           maxID,
	}, nil
}

func (s *queueStream) Reconcile(ctx context.Context, cycle preparedCycle, snapshot models.Snapshot) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{
		Collection: models.CollectionUpNext,
		Watermark:  cycle.Watermark,
		Pushed:     len(cycle.Changes),
	}

	local := s.projector.Queue()
	plan := s.resolver.ResolveQueue(cycle.Watermark, local, snapshot)
	log.Debug().Str("decision", plan.Decision.String()).Int64("watermark", snapshot.NewWatermark).Msg("queue resolved")

	switch plan.Decision {
	case DecisionAlreadyApplied, DecisionStale:
		report.Outcome = models.OutcomeAlreadyApplied
		return report, nil

	case DecisionFirstContact:
		if err := s.projector.RepublishFirstContact(ctx, len(cycle.Changes) == 0); err != nil {
			return report, err
		}
		report.Outcome = models.OutcomeFirstContact
		return report, nil

	case DecisionUnchanged:
		pruned, err := s.projector.CommitQueue(ctx, QueueCommit{
			PruneModifiedAtMs: cycle.MaxModifiedAtMs,
			PruneMaxID:        cycle.MaxID,
			Watermark:         snapshot.NewWatermark,
		})
		if err != nil {
			return report, err
		}
		report.Outcome = models.OutcomeUnchanged
		report.Watermark = snapshot.NewWatermark
		report.Pruned = pruned
		return report, nil

	case DecisionAdopt:
	}

	order, skipped := s.importUnknown(ctx, plan)
	queue := models.QueueFromIdentifiers(order)

	pruned, err := s.projector.CommitQueue(ctx, QueueCommit{
		Changed:           !slices.Equal(order, local.Identifiers()),
		Queue:             queue,
		PruneModifiedAtMs: cycle.MaxModifiedAtMs,
		PruneMaxID:        cycle.MaxID,
		Watermark:         snapshot.NewWatermark,
	})
	if err != nil {
		return report, err
	}

	report.Outcome = models.OutcomeMerged
	report.Watermark = snapshot.NewWatermark
	report.Applied = len(order)
	report.Skipped = skipped
	report.Pruned = pruned
	return report, nil
}

// importUnknown resolves identifiers missing locally and returns the server
// order without the ones that could not be imported.
func (s *queueStream) importUnknown(ctx context.Context, plan QueuePlan) ([]string, int) {
	log := logger.FromContext(ctx)

	known, err := s.episodes.FindByIdentifiers(ctx, plan.Order)
	if err != nil {
		log.Warn().Err(err).Msg("episode lookup failed, importing every queue item")
		known = map[string]models.Episode{}
	}

	var (
		order   = make([]string, 0, len(plan.Order))
		parents = make([]string, 0)
		skipped int
	)
	for _, id := range plan.Order {
		if _, ok := known[id]; ok {
			order = append(order, id)
			continue
		}

		item := plan.Items[id]
		episode, err := s.importer.ResolveEntity(ctx, item.ParentIdentifier, id, deref(item.Title), item.PublishedAtMs)
		if err != nil || episode == nil {
			log.Warn().Err(err).Str("identifier", id).Msg("queue item could not be imported, skipping")
			skipped++
			continue
		}

		order = append(order, id)
		parents = append(parents, episode.ParentIdentifier)
	}

	if err = s.importer.ResolveMissingParents(ctx, parents); err != nil {
		log.Warn().Err(err).Msg("some podcasts could not be imported")
	}

	return order, skipped
}

// episodeMetas describes locally known episodes so the server can render them.
func episodeMetas(ctx context.Context, episodes store.LocalEpisodeRepository, identifiers []string) ([]models.EpisodeMeta, error) {
	metas := make([]models.EpisodeMeta, 0, len(identifiers))
	if len(identifiers) == 0 {
		return metas, nil
	}

	found, err := episodes.FindByIdentifiers(ctx, identifiers)
	if err != nil {
		return nil, fmt.Errorf("describe episodes: %w", err)
	}

	seen := make(map[string]struct{}, len(found))
	for _, id := range identifiers {
		episode, ok := found[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		metas = append(metas, models.EpisodeMeta{
			Identifier:       episode.Identifier,
			ParentIdentifier: episode.ParentIdentifier,
			Title:            episode.Title,
			PublishedAtMs:    episode.PublishedAtMs,
		})
	}

	return metas, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
