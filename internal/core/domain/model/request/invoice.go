package request

import (
	"fmt"
	"strconv"
	"time"
)

// Invoice is issued by the remote when the request is created.
type Invoice struct {
	Number int
	Time   time.Time
}

// Matches reports whether typed is this invoice's number. The operator has
// to type it to confirm a cancellation.
func (i Invoice) Matches(typed string) bool {
	return typed == strconv.Itoa(i.Number)
}

// Code is the printed invoice id: "INV" and the last five digits of the
// number, zero padded.
func (i Invoice) Code() string {
	digits := fmt.Sprintf("%05d", i.Number)
	return "INV" + digits[len(digits)-5:]
}
