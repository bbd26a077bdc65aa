package services

import (
	"errors"
)

// 单笔支持金额的边界
const (
	MinSupportAmount = 10
	MaxSupportAmount = 1_000_000
)

var (
	ErrAmountTooSmall = errors.New("the minimum contribution is 10")
	ErrAmountTooLarge = errors.New("the contribution cannot exceed 1 000 000")
)

// ValidateSupportAmount 越界金额在任何写请求之前就拒绝
func ValidateSupportAmount(amount int) error {
	if amount < MinSupportAmount {
		return ErrAmountTooSmall
	}
	if amount > MaxSupportAmount {
		return ErrAmountTooLarge
	}
	return nil
}
