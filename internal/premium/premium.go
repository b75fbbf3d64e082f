// Package premium computes the upfront cost of a policy from its coverage
// amount. The formula is pure integer fixed-point arithmetic; truncating
// division is intentional and load-bearing, since the result defines the
// minimum accepted payment at purchase time.
package premium

import (
	"math"

	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
)

// Coverage bounds and formula constants. MaxCoverage doubles as the formula
// denominator, so the premium percentage ramps linearly from MinPremiumPct at
// zero coverage to MaxPremiumPct at full coverage.
const (
	MinPremiumPct int64 = 1
	MaxPremiumPct int64 = 20
	Scale         int64 = 1_000_000
)

var (
	MinCoverage = domain.Units(1)
	MaxCoverage = domain.Units(1_000_000)
)

// InRange reports whether a coverage amount is within the issuable bounds.
func InRange(coverage domain.Amount) bool {
	return coverage >= MinCoverage && coverage <= MaxCoverage
}

// Quote returns the premium for the given coverage amount:
//
//	pct     = MinPremiumPct + coverage*(MaxPremiumPct-MinPremiumPct)/MaxCoverage
//	premium = coverage * pct / Scale
//
// Integer division truncates toward zero. Quote has no side effects and fails
// only on arithmetic overflow, which cannot happen for coverage within
// [MinCoverage, MaxCoverage]; an overflow therefore signals a broken caller
// invariant, not bad user input.
func Quote(coverage domain.Amount) (domain.Amount, error) {
	c := int64(coverage)
	if c < 0 {
		return 0, dErrors.New(dErrors.CodeInvalidCoverageAmount, "coverage amount must be positive")
	}

	spread := MaxPremiumPct - MinPremiumPct
	if c != 0 && spread > math.MaxInt64/c {
		return 0, dErrors.New(dErrors.CodeInternal, "premium percentage overflow")
	}
	pct := MinPremiumPct + (c*spread)/int64(MaxCoverage)

	if c != 0 && pct > math.MaxInt64/c {
		return 0, dErrors.New(dErrors.CodeInternal, "premium overflow")
	}
	return domain.Amount((c * pct) / Scale), nil
}
