package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/franchise-sim/internal/lineup"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/internal/websocket"
)

// LineupView is a lineup together with its projections onto the current roster.
type LineupView struct {
	Lineup       lineup.Lineup           `json:"lineup"`
	Valid        bool                    `json:"valid"`
	TotalMinutes int                     `json:"total_minutes"`
	Formations   []string                `json:"formations"`
	Ratings      lineup.FormationRatings `json:"ratings"`
	Starters     []lineup.LineupPlayer   `json:"starters"`
	Bench        []lineup.LineupPlayer   `json:"bench"`
	Bullpen      []lineup.LineupPlayer   `json:"bullpen,omitempty"`
	Reserves     []lineup.LineupPlayer   `json:"reserves"`
	Injured      []lineup.LineupPlayer   `json:"injured"`
}

type LineupService struct {
	*base
	engines map[models.Sport]*lineup.Engine
	logger  *logrus.Entry
}

func newLineupService(b *base, log *logrus.Entry) *LineupService {
	engines := make(map[models.Sport]*lineup.Engine)
	for _, sport := range models.Sports() {
		engine, err := lineup.NewEngine(sport, nil, nil)
		if err != nil {
			continue
		}
		engines[sport] = engine
	}
	return &LineupService{base: b, engines: engines, logger: log}
}

type lineupState struct {
	club   *store.Club
	engine *lineup.Engine
	lineup lineup.Lineup
	roster models.Roster
}

// load reads a club's lineup and drops players who have left the roster.
func (s *LineupService) load(ctx context.Context, clubID string) (*lineupState, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	engine, ok := s.engines[club.Sport]
	if !ok {
		return nil, fmt.Errorf("no lineup engine for sport %q", club.Sport)
	}
	roster, err := s.store.ListRoster(ctx, clubID)
	if err != nil {
		return nil, err
	}

	l, err := s.store.GetLineup(ctx, clubID)
	if errors.Is(err, store.ErrNotFound) {
		l, err = engine.NewLineup(club.Formation)
	}
	if err != nil {
		return nil, err
	}

	return &lineupState{
		club:   club,
		engine: engine,
		lineup: lineup.Prune(l, roster),
		roster: roster,
	}, nil
}

func (s *LineupService) view(st *lineupState) *LineupView {
	e, l, r := st.engine, st.lineup, st.roster
	return &LineupView{
		Lineup:       l,
		Valid:        e.IsValidLineup(l, r),
		TotalMinutes: lineup.TotalMinutes(l),
		Formations:   lineup.Formations(e.Sport()),
		Ratings:      e.GetFormationRatings(l, r),
		Starters:     e.Starters(l, r),
		Bench:        e.Bench(l, r),
		Bullpen:      e.Bullpen(l, r),
		Reserves:     e.Reserves(l, r),
		Injured:      e.Injured(l, r),
	}
}

// GetLineup serves the cached snapshot when there is one.
func (s *LineupService) GetLineup(ctx context.Context, clubID string) (*LineupView, error) {
	log := s.logger.WithField("club_id", clubID)
	var cached LineupView
	if s.cacheGet(ctx, log, LineupCacheKey(clubID), &cached) {
		return &cached, nil
	}

	st, err := s.load(ctx, clubID)
	if err != nil {
		return nil, err
	}
	v := s.view(st)
	s.cacheSet(ctx, log, LineupCacheKey(clubID), v)
	return v, nil
}

type lineupOp func(e *lineup.Engine, l lineup.Lineup, roster models.Roster) (lineup.Lineup, error)

// mutate applies op under the club lock. A rejected op leaves the stored lineup
// untouched and its error is returned as is.
func (s *LineupService) mutate(ctx context.Context, clubID, action string, op lineupOp) (*LineupView, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	st, err := s.load(ctx, clubID)
	if err != nil {
		return nil, err
	}
	log := clubEntry(s.logger, clubID, st.club.Sport).WithField("action", action)

	next, err := op(st.engine, st.lineup, st.roster)
	if err != nil {
		if models.IsRejected(err) {
			log.WithError(err).Debug("Lineup change rejected")
		}
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.SaveLineup(ctx, clubID, next); err != nil {
			return err
		}
		if next.Formation != st.club.Formation {
			st.club.Formation = next.Formation
			return tx.UpdateClub(ctx, st.club)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	st.lineup = next
	v := s.view(st)
	s.cacheSet(ctx, log, LineupCacheKey(clubID), v)
	s.broadcast(clubID, websocket.EventLineupUpdated, v)

	log.WithField("valid", v.Valid).Info("Lineup updated")
	return v, nil
}

func (s *LineupService) ApplyOptimalLineup(ctx context.Context, clubID string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "optimal", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		return e.ApplyOptimalLineup(l, r)
	})
}

func (s *LineupService) SetStarter(ctx context.Context, clubID string, slot int, playerID string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "set_starter", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		return e.SetStarter(l, r, slot, playerID)
	})
}

func (s *LineupService) MoveToBench(ctx context.Context, clubID, playerID string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "bench", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		return e.MoveToBench(l, r, playerID)
	})
}

func (s *LineupService) RemoveFromBench(ctx context.Context, clubID, playerID string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "unbench", func(e *lineup.Engine, l lineup.Lineup, _ models.Roster) (lineup.Lineup, error) {
		return e.RemoveFromBench(l, playerID)
	})
}

func (s *LineupService) Swap(ctx context.Context, clubID string, a, b lineup.SlotRef) (*LineupView, error) {
	return s.mutate(ctx, clubID, "swap", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		return e.Swap(l, r, a, b)
	})
}

func (s *LineupService) SwapBattingOrder(ctx context.Context, clubID string, a, b int) (*LineupView, error) {
	return s.mutate(ctx, clubID, "batting_order", func(e *lineup.Engine, l lineup.Lineup, _ models.Roster) (lineup.Lineup, error) {
		return e.SwapBattingOrder(l, a, b)
	})
}

func (s *LineupService) SetMinutes(ctx context.Context, clubID, playerID string, minutes int) (*LineupView, error) {
	return s.mutate(ctx, clubID, "minutes", func(e *lineup.Engine, l lineup.Lineup, _ models.Roster) (lineup.Lineup, error) {
		return e.SetMinutes(l, playerID, minutes)
	})
}

func (s *LineupService) ChangeFormation(ctx context.Context, clubID, formation string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "formation", func(e *lineup.Engine, l lineup.Lineup, _ models.Roster) (lineup.Lineup, error) {
		return e.ChangeFormation(l, formation)
	})
}

// SetBullpenRole assigns a role; an empty player id clears it.
func (s *LineupService) SetBullpenRole(ctx context.Context, clubID string, role lineup.BullpenRole, playerID string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "bullpen", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		if playerID == "" {
			return e.ClearBullpenRole(l, role)
		}
		return e.SetBullpenRole(l, r, role, playerID)
	})
}

func (s *LineupService) SetStartingPitcher(ctx context.Context, clubID, playerID string) (*LineupView, error) {
	return s.mutate(ctx, clubID, "starting_pitcher", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		return e.SetStartingPitcher(l, r, playerID)
	})
}

func (s *LineupService) SetFullLineup(ctx context.Context, clubID string, a lineup.Assignment) (*LineupView, error) {
	return s.mutate(ctx, clubID, "full_lineup", func(e *lineup.Engine, l lineup.Lineup, r models.Roster) (lineup.Lineup, error) {
		return e.SetFullLineup(l, r, a)
	})
}
