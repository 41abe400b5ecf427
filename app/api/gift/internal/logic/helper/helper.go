package helper

import (
	"strings"

	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/consts/biz"
	"GiftVisionary/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

// ValidateGiftRequest enforces the budget-window invariants the form's
// dual-range control guarantees on its side.
func ValidateGiftRequest(req *types.GiftRequest) error {
	if req == nil {
		return errors.New(errno.InvalidParam, "missing request body")
	}
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.Nickname == "" {
		return errors.New(errno.InvalidParam, "nickname is required")
	}
	if req.BudgetMin < biz.BudgetFloor {
		return errors.New(errno.InvalidParam, "budgetMin must be non-negative")
	}
	if req.BudgetMax > biz.BudgetCeiling {
		return errors.New(errno.InvalidParam, "budgetMax exceeds the ceiling")
	}
	if req.BudgetMax-req.BudgetMin < biz.BudgetMinGap {
		return errors.New(errno.InvalidParam, "budget window is too narrow")
	}
	return nil
}
