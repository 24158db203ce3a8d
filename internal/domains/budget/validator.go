package budget

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"

	"filmforge-backend/internal/shared/apperror"
)

// ErrFeeOverflow is returned by Sum when the total does not fit in 64 bits.
var ErrFeeOverflow = errors.New("sum of fees overflows uint64")

// Sum adds fees with a 64-bit unsigned accumulator and fails instead of
// wrapping around.
func Sum(fees []uint64) (uint64, error) {
	var total uint64
	for _, fee := range fees {
		var carry uint64
		total, carry = bits.Add64(total, fee, 0)
		if carry != 0 {
			return 0, ErrFeeOverflow
		}
	}
	return total, nil
}

// IsWithinBudget reports whether sum(fees) <= budget. An empty roster is
// always within budget. An overflowing sum exceeds every uint64 budget.
func IsWithinBudget(budget uint64, fees []uint64) bool {
	total, err := Sum(fees)
	if err != nil {
		return false
	}
	return total <= budget
}

// Check returns a BudgetExceeded error when fees do not fit the budget.
func Check(budget uint64, fees []uint64) error {
	total, err := Sum(fees)
	if err != nil {
		return apperror.BudgetExceeded("Movie will be over budget").
			WithDetails(map[string]interface{}{
				"budget": budget,
				"reason": err.Error(),
			})
	}
	if total > budget {
		return apperror.BudgetExceeded(
			fmt.Sprintf("Movie will be over budget: committed fees %d exceed budget %d", total, budget),
		).WithDetails(map[string]interface{}{
			"budget":    budget,
			"committed": total,
			"excess":    total - budget,
		})
	}
	return nil
}

// Summary describes how much of a budget a roster consumes.
type Summary struct {
	Budget      uint64          `json:"budget"`
	Committed   uint64          `json:"committed"`
	Remaining   uint64          `json:"remaining"`
	OverBudget  bool            `json:"over_budget"`
	Overflow    bool            `json:"overflow,omitempty"`
	Utilization decimal.Decimal `json:"utilization_percent"`
}

var hundred = decimal.NewFromInt(100)

// Summarize computes a Summary. Utilization is a percentage rounded to two
// places; a zero budget with a non-empty committed total reports 100.
func Summarize(budget uint64, fees []uint64) Summary {
	s := Summary{Budget: budget}

	total, err := Sum(fees)
	if err != nil {
		s.Overflow = true
		s.OverBudget = true
		s.Utilization = hundred
		return s
	}

	s.Committed = total
	if total > budget {
		s.OverBudget = true
	} else {
		s.Remaining = budget - total
	}

	switch {
	case budget == 0 && total == 0:
		s.Utilization = decimal.Zero
	case budget == 0:
		s.Utilization = hundred
	default:
		s.Utilization = fromUint64(total).Mul(hundred).Div(fromUint64(budget)).Round(2)
	}

	return s
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
