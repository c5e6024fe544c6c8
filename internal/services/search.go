package services

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type SearchKind string

const (
	SearchRoster   SearchKind = "roster"
	SearchProspect SearchKind = "prospect"
	SearchReport   SearchKind = "report"
)

type SearchResult struct {
	Kind     SearchKind `json:"kind"`
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Distance int        `json:"distance"`
}

type searchTarget struct {
	kind SearchKind
	id   string
	name string
}

// SearchPlayers finds roster players, academy prospects and scouted prospects whose
// names contain the query letters in order, closest matches first.
func (s *ClubService) SearchPlayers(ctx context.Context, clubID, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("query is required")
	}
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}

	roster, err := s.store.ListRoster(ctx, clubID)
	if err != nil {
		return nil, err
	}
	prospects, err := s.store.ListProspects(ctx, clubID)
	if err != nil {
		return nil, err
	}
	reports, err := s.store.ListReports(ctx, clubID)
	if err != nil {
		return nil, err
	}

	targets := make([]searchTarget, 0, len(roster)+len(prospects)+len(reports))
	for _, p := range roster {
		targets = append(targets, searchTarget{SearchRoster, p.ID, p.Name})
	}
	for _, p := range prospects {
		if p.IsActive() {
			targets = append(targets, searchTarget{SearchProspect, p.ID, p.Name})
		}
	}
	for _, r := range reports {
		targets = append(targets, searchTarget{SearchReport, r.ID, r.Name})
	}

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	results := make([]SearchResult, 0, len(ranks))
	for _, rank := range ranks {
		t := targets[rank.OriginalIndex]
		results = append(results, SearchResult{Kind: t.kind, ID: t.id, Name: t.name, Distance: rank.Distance})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}
