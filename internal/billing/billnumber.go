package billing

import (
	"strconv"
	"time"
)

// NewBillNumber derives the human-facing bill number from a timestamp:
// "B" + the last six digits of the millisecond clock. The scheme is not
// collision-free under concurrent creation; the store's UUID is the real
// identity and a duplicate number is cosmetic.
func NewBillNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	return "B" + ms[len(ms)-6:]
}
