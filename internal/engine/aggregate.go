package engine

// classifySkillLevel maps an aggregate percentage to a SkillLevel.
// Thresholds are inclusive lower bounds, checked strictly descending.
func classifySkillLevel(pct float64) SkillLevel {
	switch {
	case pct >= 85:
		return SkillExpert
	case pct >= 70:
		return SkillAdvanced
	case pct >= 50:
		return SkillIntermediate
	default:
		return SkillBeginner
	}
}

// classifyTier maps an aggregate percentage to a Tier.
// Thresholds are inclusive lower bounds, checked strictly descending.
func classifyTier(pct float64) Tier {
	switch {
	case pct >= 90:
		return TierPlatinum
	case pct >= 75:
		return TierGold
	case pct >= 60:
		return TierSilver
	default:
		return TierBronze
	}
}
