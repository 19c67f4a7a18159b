package services

import "mysterydinner_server/models"

// Score weights. They sum to 1.0 for a fully matched pair.
const (
	diningStyleWeight   = 0.4
	dietaryWeight       = 0.3
	localityBonusWeight = 0.3
)

// CompatibilityScore returns a heuristic similarity in [0, 1] between two
// users' dining preferences. Symmetric: Score(a,b) == Score(b,a).
//
// The locality bonus is flat because proximity is already gated by the
// group builder before any pair is scored.
func CompatibilityScore(a, b models.UserProfile) float64 {
	score := localityBonusWeight

	if a.DiningStyle != nil && b.DiningStyle != nil && *a.DiningStyle == *b.DiningStyle {
		score += diningStyleWeight
	}

	score += dietaryWeight * dietaryOverlap(a.DietaryPreferences, b.DietaryPreferences)

	return score
}

// dietaryOverlap returns |intersection| / max(|a|, |b|, 1). Two empty sets
// overlap 0, not NaN.
func dietaryOverlap(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(a))
	for _, tag := range a {
		seen[tag] = struct{}{}
	}

	common := 0
	counted := make(map[string]struct{}, len(b))
	for _, tag := range b {
		if _, dup := counted[tag]; dup {
			continue
		}
		counted[tag] = struct{}{}
		if _, ok := seen[tag]; ok {
			common++
		}
	}

	denom := len(seen)
	if len(counted) > denom {
		denom = len(counted)
	}
	if denom == 0 {
		denom = 1
	}

	return float64(common) / float64(denom)
}
