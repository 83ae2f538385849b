package stockorder

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderType identifies which workflow a stock order follows
type OrderType string

const (
	OrderTypeShipment   OrderType = "shipment"
	OrderTypeReturn     OrderType = "return"
	OrderTypeAdjustment OrderType = "adjustment"
)

// IsValid checks if the order type is known
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeShipment, OrderTypeReturn, OrderTypeAdjustment:
		return true
	}
	return false
}

// String returns the string representation of OrderType
func (t OrderType) String() string {
	return string(t)
}

// NumberPrefix returns the prefix used for human readable order numbers
func (t OrderType) NumberPrefix() string {
	switch t {
	case OrderTypeShipment:
		return "SHP"
	case OrderTypeReturn:
		return "RTN"
	case OrderTypeAdjustment:
		return "ADJ"
	}
	return "STK"
}

// ParseOrderType parses a case-insensitive order type
func ParseOrderType(s string) (OrderType, bool) {
	t := OrderType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// Status is a workflow status. Its meaning is scoped by the order type;
// each workflow narrows it to its own typed enum.
type Status string

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// ItemCondition describes the physical state of a returned item
type ItemCondition string

const (
	ConditionGood      ItemCondition = "good"
	ConditionDamaged   ItemCondition = "damaged"
	ConditionDefective ItemCondition = "defective"
)

// IsValid checks if the condition is one of the allowed values
func (c ItemCondition) IsValid() bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionDefective:
		return true
	}
	return false
}

// Actor is the authenticated identity behind a mutating call
type Actor struct {
	ID   string
	Name string
}

// IsZero reports whether no identity was supplied
func (a Actor) IsZero() bool {
	return strings.TrimSpace(a.ID) == ""
}

// ClampQuantity applies delta to old and floors the result at zero
func ClampQuantity(old, delta decimal.Decimal) decimal.Decimal {
	next := old.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
