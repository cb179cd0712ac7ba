package store

import (
	"fmt"
	"time"
)

// Ids are derived from the creation timestamp: the last six digits of the
// millisecond clock, prefixed by entity kind.

func timestampSuffix(now time.Time) string {
	ms := now.UnixMilli()
	return fmt.Sprintf("%06d", ms%1000000)
}

func GenerateOrderID(now time.Time) string {
	return "ORD-" + timestampSuffix(now)
}

func GenerateCustomerID(now time.Time) string {
	return "CUST-" + timestampSuffix(now)
}

func GeneratePaymentID(now time.Time) string {
	return "PAY-" + timestampSuffix(now)
}

func GenerateItemID(menuItemID int) string {
	return fmt.Sprintf("ITEM-%03d", menuItemID)
}

func GenerateMenuItemID(now time.Time) string {
	return "ITEM-" + timestampSuffix(now)
}
