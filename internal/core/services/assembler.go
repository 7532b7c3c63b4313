package services

import (
	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// OutfitAssembler generates combinatorial outfit candidates from a flat,
// role-mixed candidate list. Each role partition is capped to its first K
// items in the order received from search; that order already reflects
// relevance, so capping approximates top-K pruning before combination.
type OutfitAssembler struct {
	cap int
}

// NewOutfitAssembler creates an assembler with the given per-role cap.
// A non-positive cap uses the default.
func NewOutfitAssembler(cap int) *OutfitAssembler {
	if cap <= 0 {
		cap = domain.DefaultAssembleCap
	}
	return &OutfitAssembler{cap: cap}
}

// Assemble partitions candidates by mandatory role and returns the full
// Cartesian product of the capped partitions. Iteration order is fixed:
// tops outer, bottoms middle, shoes inner, so candidate order is
// deterministic given deterministic input order.
//
// An empty mandatory partition yields zero candidates; insufficient
// catalog diversity is an expected outcome, not an error.
func (a *OutfitAssembler) Assemble(candidates []domain.ClothingItem) []domain.OutfitCandidate {
	var tops, bottoms, shoes []domain.ClothingItem
	for i := range candidates {
		switch candidates[i].Role {
		case domain.RoleTop:
			tops = append(tops, candidates[i])
		case domain.RoleBottom:
			bottoms = append(bottoms, candidates[i])
		case domain.RoleShoes:
			shoes = append(shoes, candidates[i])
		default:
			// Outer, accessory, and unknown roles are outside the
			// base assembly contract.
		}
	}

	tops = capped(tops, a.cap)
	bottoms = capped(bottoms, a.cap)
	shoes = capped(shoes, a.cap)

	if len(tops) == 0 || len(bottoms) == 0 || len(shoes) == 0 {
		logger.Debug("Assembly: empty partition (tops=%d bottoms=%d shoes=%d), no candidates",
			len(tops), len(bottoms), len(shoes))
		return []domain.OutfitCandidate{}
	}

	outfits := make([]domain.OutfitCandidate, 0, len(tops)*len(bottoms)*len(shoes))
	for _, t := range tops {
		for _, b := range bottoms {
			for _, s := range shoes {
				outfits = append(outfits, domain.OutfitCandidate{Top: t, Bottom: b, Shoes: s})
			}
		}
	}

	logger.Debug("Assembly: %d candidates from %dx%dx%d", len(outfits), len(tops), len(bottoms), len(shoes))
	return outfits
}

func capped(items []domain.ClothingItem, k int) []domain.ClothingItem {
	if len(items) > k {
		return items[:k]
	}
	return items
}
