package services

import (
	"mysterydinner_server/config"
	"mysterydinner_server/models"
)

// GroupConfig holds the tunables for group building.
type GroupConfig struct {
	MaxRadiusKm      float64
	MaxGroupSize     int
	MinCompatibility float64
}

// DefaultGroupConfig returns the production defaults (50 km radius, groups
// of up to 6, minimum compatibility 0.3).
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		MaxRadiusKm:      config.DefaultMaxRadiusKm,
		MaxGroupSize:     config.DefaultMaxGroupSize,
		MinCompatibility: config.DefaultMinCompatibility,
	}
}

// BuildGroups partitions the eligible pool into disjoint dining groups of
// 2 to cfg.MaxGroupSize members, plus the leftover users that could not be
// placed this run.
//
// The pass is greedy and order-dependent: each unused user seeds a group,
// and remaining users join when they are within cfg.MaxRadiusKm of the seed
// and score above cfg.MinCompatibility against the seed. A candidate is
// accepted without checking later-added members, so results are
// deterministic for a fixed input order but not globally optimal. That is
// the intended behavior; do not replace it with an optimal matching.
func BuildGroups(pool []models.UserProfile, cfg GroupConfig) ([][]models.UserProfile, []models.UserProfile) {
	groups := make([][]models.UserProfile, 0, len(pool))
	var leftovers []models.UserProfile

	used := make([]bool, len(pool))

	for i, seed := range pool {
		if used[i] {
			continue
		}
		if !seed.HasLocation() {
			used[i] = true
			leftovers = append(leftovers, seed)
			continue
		}

		group := []models.UserProfile{seed}
		used[i] = true

		for j := i + 1; j < len(pool); j++ {
			if used[j] || len(group) >= cfg.MaxGroupSize {
				continue
			}
			candidate := pool[j]
			if !candidate.HasLocation() {
				continue
			}

			distance := HaversineKm(*seed.Latitude, *seed.Longitude, *candidate.Latitude, *candidate.Longitude)
			if distance > cfg.MaxRadiusKm {
				continue
			}
			if CompatibilityScore(seed, candidate) <= cfg.MinCompatibility {
				continue
			}

			group = append(group, candidate)
			used[j] = true
		}

		if len(group) >= 2 {
			groups = append(groups, group)
		} else {
			// A lone seed is not retried within this run.
			leftovers = append(leftovers, seed)
		}
	}

	return groups, leftovers
}
