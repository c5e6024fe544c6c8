package scouting

const budgetTier = 100000

const (
	baseAcademyCapacity = 3
	slotsPerTier        = 2
	baseReportsPerCycle = 2
	maxReportsPerCycle  = 6
	maxQualityBonus     = 0.5
)

func tiers(budget int64) int {
	if budget <= 0 {
		return 0
	}
	return int(budget / budgetTier)
}

// CalculateAcademyCapacity returns 3 slots plus 2 per full 100,000 of academy budget.
func CalculateAcademyCapacity(budget int64) int {
	return baseAcademyCapacity + slotsPerTier*tiers(budget)
}

// CalculateReportsPerCycle returns 2 reports plus 1 per full 100,000 of scouting
// budget, capped at 6.
func CalculateReportsPerCycle(budget int64) int {
	n := baseReportsPerCycle + tiers(budget)
	if n > maxReportsPerCycle {
		return maxReportsPerCycle
	}
	return n
}

// QualityMultiplier scales generated attributes by scouting budget: +0.1 per tier,
// at most 1.5.
func QualityMultiplier(budget int64) float64 {
	bonus := 0.1 * float64(tiers(budget))
	if bonus > maxQualityBonus {
		bonus = maxQualityBonus
	}
	return 1 + bonus
}
