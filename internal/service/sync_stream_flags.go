// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// flagStream syncs starred flags. It keeps two cursors: the merge cursor is
// the newest applied server flag time, the push cursor is the highest local
// flag sequence the server has received. Sequences are assigned per edit, so
// an edit made during a cycle is above the cursor that cycle commits.
type flagStream struct {
	watermarks store.WatermarkRepository
	episodes   store.LocalEpisodeRepository

	resolver  *conflictResolver
	importer  EntityImporter
	projector *stateProjector
}

func (s *flagStream) Collection() models.Collection {
	return models.CollectionStarred
}

func (s *flagStream) Prepare(ctx context.Context) (preparedCycle, error) {
	watermark, err := s.watermarks.Get(ctx, models.StreamStarred)
	if err != nil {
		return preparedCycle{}, fmt.Errorf("read merge cursor: %w", err)
	}

	pushCursor, err := s.watermarks.Get(ctx, models.StreamStarredPush)
	if err != nil {
		return preparedCycle{}, fmt.Errorf("read push cursor: %w", err)
	}

	pending, pushSeq, err := s.episodes.PendingFlags(ctx, pushCursor)
	if err != nil {
		return preparedCycle{}, fmt.Errorf("read pending flags: %w", err)
	}

	flags := make([]models.FlagChange, 0, len(pending))
	ids := make([]string, 0, len(pending))
	for _, f := range pending {
		flags = append(flags, models.FlagChange{
			Identifier:   f.Identifier,
			Value:        f.Value,
			ModifiedAtMs: f.LastModifiedAtMs,
		})
		ids = append(ids, f.Identifier)
	}

	metas, err := episodeMetas(ctx, s.episodes, ids)
	if err != nil {
		return preparedCycle{}, err
	}

	cycle := preparedCycle{
		Watermark:       watermark,
		Flags:           flags,
		Episodes:        metas,
		MaxModifiedAtMs: maxFlagTime(pending),
	}
	if len(pending) > 0 {
		cycle.PushSeq = pushSeq
	}
	return cycle, nil
}

func (s *flagStream) Reconcile(ctx context.Context, cycle preparedCycle, snapshot models.Snapshot) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{
		Collection: models.CollectionStarred,
		Watermark:  cycle.Watermark,
		Pushed:     len(cycle.Flags),
	}

	local, err := s.episodes.FindByIdentifiers(ctx, snapshot.Identifiers())
	if err != nil {
		return report, fmt.Errorf("load local flags: %w", err)
	}
	flags := make(map[string]models.FlagState, len(local))
	for id, episode := range local {
		flags[id] = episode.Flag()
	}

	plan := s.resolver.ResolveFlags(cycle.Watermark, flags, snapshot)
	log.Debug().
		Str("decision", plan.Decision.String()).
		Int("ignored", plan.Ignored).
		Int64("watermark", snapshot.NewWatermark).
		Msg("flags resolved")

	commit := FlagCommit{PushCursor: cycle.PushSeq}

	switch plan.Decision {
	case DecisionAlreadyApplied, DecisionStale, DecisionFirstContact:
		// the server received the pushed flags even when nothing merges
		if commit.PushCursor > 0 {
			if _, err = s.projector.CommitFlags(ctx, commit); err != nil {
				return report, err
			}
		}
		report.Outcome = models.OutcomeAlreadyApplied
		if plan.Decision == DecisionFirstContact {
			report.Outcome = models.OutcomeFirstContact
		}
		return report, nil

	case DecisionUnchanged, DecisionAdopt:
	}

	items := make(map[string]models.SnapshotItem, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items[item.Identifier] = item
	}

	parents := make([]string, 0)
	for _, flag := range plan.Apply {
		if _, ok := local[flag.Identifier]; ok {
			commit.Flags = append(commit.Flags, flag)
			continue
		}

		item := items[flag.Identifier]
		episode, err := s.importer.ResolveEntity(ctx, item.ParentIdentifier, flag.Identifier, deref(item.Title), item.PublishedAtMs)
		if err != nil || episode == nil {
			log.Warn().Err(err).Str("identifier", flag.Identifier).Msg("flagged episode could not be imported, skipping")
			report.Skipped++
			continue
		}
		commit.Flags = append(commit.Flags, flag)
		parents = append(parents, episode.ParentIdentifier)
	}

	if err = s.importer.ResolveMissingParents(ctx, parents); err != nil {
		log.Warn().Err(err).Msg("some podcasts could not be imported")
	}

	if cursor := maxFlagTime(commit.Flags); cursor > cycle.Watermark {
		commit.MergeCursor = cursor
	}

	applied, err := s.projector.CommitFlags(ctx, commit)
	if err != nil {
		return report, err
	}
	if suppressed := len(commit.Flags) - len(applied); suppressed > 0 {
		log.Debug().Int("suppressed", suppressed).Msg("server flags lost to newer local edits")
	}

	report.Outcome = models.OutcomeUnchanged
	if len(applied) > 0 {
		report.Outcome = models.OutcomeMerged
	}
	report.Applied = len(applied)
	report.Watermark = max(cycle.Watermark, commit.MergeCursor)
	return report, nil
}
