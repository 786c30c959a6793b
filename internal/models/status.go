package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "InProgress"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// AllStatuses lists every order status in lifecycle order.
var AllStatuses = []OrderStatus{StatusPending, StatusInProgress, StatusDelivered, StatusCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// OfferedTargets returns the statuses an operator may move an order to
// from the current status. The current status itself is never offered,
// Pending is not offered once work has begun or concluded, and terminal
// statuses offer nothing.
func (s OrderStatus) OfferedTargets() []OrderStatus {
	if s.Terminal() {
		return nil
	}
	targets := make([]OrderStatus, 0, len(AllStatuses)-1)
	for _, t := range AllStatuses {
		if t == s {
			continue
		}
		if t == StatusPending && s != StatusPending {
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

// CanTransitionTo reports whether target is in the offered set for s.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range s.OfferedTargets() {
		if t == target {
			return true
		}
	}
	return false
}
