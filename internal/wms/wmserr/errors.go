// Package wmserr defines the error kinds surfaced by the WMS core. Services
// wrap these sentinels with entity context via fmt.Errorf("...: %w", Err...)
// so callers can branch with errors.Is while users still see the offending
// ids and values.
package wmserr

import "errors"

var (
	// ErrNotFound is returned when an entity id cannot be resolved.
	ErrNotFound = errors.New("not found")

	// ErrWarehouseMismatch is returned when an operation references an
	// entity belonging to another warehouse.
	ErrWarehouseMismatch = errors.New("warehouse mismatch")

	// ErrLocationMismatch is returned when a location does not belong to
	// the operation's warehouse.
	ErrLocationMismatch = errors.New("location not in warehouse")

	// ErrInvalidQuantity is returned when a quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInsufficientStock is returned when a decrement or pick exceeds the
	// available quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidMove is returned for transfers with equal source and target
	// or a tare that has no current location.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidTransition is returned when a status change is not in the
	// allow-list of the order state machine.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOrderNotReceiving is returned when a receive call hits an order
	// outside the receiving family of statuses.
	ErrOrderNotReceiving = errors.New("order is not in receiving")

	// ErrAlreadyClosed is returned when a closed tare is closed again or
	// receives new stock.
	ErrAlreadyClosed = errors.New("tare already closed")

	// ErrAlreadyPlaced is returned when closing a tare that already has a
	// location.
	ErrAlreadyPlaced = errors.New("tare already placed to a location")

	// ErrInvalidZoneTransition is returned when a put-away or move violates
	// the zone-type allow-list.
	ErrInvalidZoneTransition = errors.New("zone transition not allowed")

	// ErrInvalidZoneType is returned when a zone is created with a type
	// outside the known set.
	ErrInvalidZoneType = errors.New("unknown zone type")

	// ErrZoneNotInbound is returned when a receiving tare is closed into a
	// location outside the inbound staging zone.
	ErrZoneNotInbound = errors.New("location is not in an inbound zone")

	// ErrExceedsRequired is returned when a pick exceeds the remaining
	// quantity on a task line.
	ErrExceedsRequired = errors.New("picked quantity exceeds required amount")

	// ErrExceedsOrdered is returned when accumulated picks would overflow
	// the ordered quantity on the outbound line.
	ErrExceedsOrdered = errors.New("picked quantity exceeds ordered")

	// ErrEmptyOrder is returned when an order has no lines or nothing left
	// to act on.
	ErrEmptyOrder = errors.New("nothing to pick")

	// ErrDuplicateKey is returned on sku/code/tare_code collisions.
	ErrDuplicateKey = errors.New("duplicate key")
)
