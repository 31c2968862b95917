package statemachine

import (
	"errors"

	"rotiseria-api/models"
)

// Actor names used in the transition table
const (
	ActorClient = "client"
	ActorCook   = "cook"
	ActorCadet  = "cadet"
	ActorAdmin  = "admin"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition.
// There is no PENDING → DELIVERED entry: an order must pass through the
// kitchen and a cadet before it can be completed.
var validTransitions = []Transition{
	// Kitchen accepts the order
	{From: models.StatusPending, To: models.StatusInPreparation, Actor: ActorCook},
	{From: models.StatusPending, To: models.StatusInPreparation, Actor: ActorAdmin},
	// A PENDING order can still be cancelled
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorClient},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorCook},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorAdmin},
	// Order leaves the kitchen: cook hands off, or a cadet claims it
	{From: models.StatusInPreparation, To: models.StatusInTransit, Actor: ActorCook},
	{From: models.StatusInPreparation, To: models.StatusInTransit, Actor: ActorCadet},
	{From: models.StatusInPreparation, To: models.StatusInTransit, Actor: ActorAdmin},
	{From: models.StatusInPreparation, To: models.StatusCancelled, Actor: ActorClient},
	{From: models.StatusInPreparation, To: models.StatusCancelled, Actor: ActorAdmin},
	// Cadet completes the delivery
	{From: models.StatusInTransit, To: models.StatusDelivered, Actor: ActorCadet},
	{From: models.StatusInTransit, To: models.StatusDelivered, Actor: ActorAdmin},
}

// activeStatuses are the states in which a client's order blocks placing a
// new one.
var activeStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusInPreparation,
	models.StatusInTransit,
}

// ActiveStatuses returns the order states considered in-flight
func ActiveStatuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(activeStatuses))
	copy(out, activeStatuses)
	return out
}

// ParseStatus validates a raw status string at the boundary. Unknown values
// are rejected rather than stored.
func ParseStatus(raw string) (models.OrderStatus, error) {
	status := models.OrderStatus(raw)
	switch status {
	case models.StatusPending, models.StatusInPreparation, models.StatusInTransit,
		models.StatusDelivered, models.StatusCancelled:
		return status, nil
	}
	return "", errors.New("unknown order status: " + raw)
}

// RoleActor maps a user role to its actor name in the transition table
func RoleActor(role models.UserRole) string {
	switch role {
	case models.RoleAdmin:
		return ActorAdmin
	case models.RoleCook:
		return ActorCook
	case models.RoleCadet:
		return ActorCadet
	default:
		return ActorClient
	}
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
