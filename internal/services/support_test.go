package services

import (
	"errors"
	"testing"
)

func TestValidateSupportAmount(t *testing.T) {
	if err := ValidateSupportAmount(5); !errors.Is(err, ErrAmountTooSmall) {
		t.Errorf("amount 5: got %v, want ErrAmountTooSmall", err)
	}
	if err := ValidateSupportAmount(0); !errors.Is(err, ErrAmountTooSmall) {
		t.Errorf("amount 0: got %v, want ErrAmountTooSmall", err)
	}
	if err := ValidateSupportAmount(2_000_000); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("amount 2000000: got %v, want ErrAmountTooLarge", err)
	}
	// 边界值放行
	for _, amount := range []int{MinSupportAmount, 500, MaxSupportAmount} {
		if err := ValidateSupportAmount(amount); err != nil {
			t.Errorf("amount %d rejected: %v", amount, err)
		}
	}
}
