package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
)

const (
	weekSeedStride    = 100_000
	advanceSeedOffset = 50_000
)

type generateOptions struct {
	Week   int
	Count  int
	Budget int64
	Seed   int64
	Reveal bool
}

// generateReports draws a scouting batch the way a club cycle would. A zero count
// falls back to the budget's reports per cycle.
func generateReports(engine *scouting.Engine, opts generateOptions) []reportDoc {
	count := opts.Count
	if count <= 0 {
		count = scouting.CalculateReportsPerCycle(opts.Budget)
	}
	reports := engine.GenerateScoutingReports(opts.Week, count, scouting.QualityMultiplier(opts.Budget), opts.Seed)
	docs := make([]reportDoc, 0, len(reports))
	for _, r := range reports {
		docs = append(docs, toDoc(r, opts.Reveal))
	}
	return docs
}

type advanceOptions struct {
	Week        int
	Cycles      int
	Seed        int64
	ContinueAll bool
}

// advanceReports replays scouting cycles starting at opts.Week. Reports the engine
// rejects (not scouting, terminal, fully scouted) are listed as skipped.
func advanceReports(engine *scouting.Engine, reports []models.ScoutingReport, opts advanceOptions) []advanceDoc {
	cycles := opts.Cycles
	if cycles <= 0 {
		cycles = 1
	}
	current := make([]models.ScoutingReport, len(reports))
	copy(current, reports)

	results := make([]advanceDoc, 0, cycles)
	for c := 0; c < cycles; c++ {
		week := opts.Week + c*scouting.ScoutingCycleWeeks
		doc := advanceDoc{Week: week, Advanced: []string{}, Lost: []string{}, Skipped: []string{}}
		for i, r := range current {
			if opts.ContinueAll && !r.ContinueScouting {
				if next, err := scouting.RequestContinueScouting(r); err == nil {
					r = next
				}
			}
			seed := opts.Seed + int64(week)*weekSeedStride + advanceSeedOffset + int64(i)
			next, err := engine.AdvanceScoutingReport(r, week, seed)
			switch {
			case err != nil:
				doc.Skipped = append(doc.Skipped, r.ID)
			case next.Status == models.ReportSignedByRival:
				doc.Lost = append(doc.Lost, r.ID)
			default:
				doc.Advanced = append(doc.Advanced, r.ID)
			}
			current[i] = next
		}
		doc.Reports = make([]reportDoc, 0, len(current))
		for _, r := range current {
			doc.Reports = append(doc.Reports, toDoc(r, true))
		}
		results = append(results, doc)
	}
	return results
}

func capacityFor(academyBudget, scoutingBudget int64) capacityDoc {
	return capacityDoc{
		AcademyBudget:     academyBudget,
		ScoutingBudget:    scoutingBudget,
		AcademySlots:      scouting.CalculateAcademyCapacity(academyBudget),
		ReportsPerCycle:   scouting.CalculateReportsPerCycle(scoutingBudget),
		QualityMultiplier: scouting.QualityMultiplier(scoutingBudget),
	}
}

func readReports(r io.Reader) ([]models.ScoutingReport, error) {
	var docs []reportDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decoding reports: %w", err)
	}
	reports := make([]models.ScoutingReport, 0, len(docs))
	for _, d := range docs {
		if d.ActualAttributes == nil || d.Potentials == nil {
			return nil, fmt.Errorf("report %s has no hidden values; generate it with --reveal", d.ID)
		}
		reports = append(reports, d.report())
	}
	return reports, nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding to YAML failed on close: %w", err)
	}
	return nil
}

// openOutput returns stdout for "-" and a truncated file otherwise.
func openOutput(location string) (io.WriteCloser, error) {
	if location == "" || location == stdoutCLIName {
		return nopCloser{os.Stdout}, nil
	}
	return os.OpenFile(location, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
