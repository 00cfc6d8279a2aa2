package domain

import "fmt"

// ActionKind is a metered generation kind on the free tier.
type ActionKind string

const (
	ActionDMGeneration       ActionKind = "dm_generation"
	ActionPricingCalculation ActionKind = "pricing_calculation"
	ActionMediaKitGeneration ActionKind = "media_kit_generation"
)

// ActivityType is the activity_type column of user_activity_log.
type ActivityType string

const (
	ActivityDMGeneration        ActivityType = "dm_generation"
	ActivityPricingCalculation  ActivityType = "pricing_calculation"
	ActivityMediaKitCreation    ActivityType = "media_kit_creation"
	ActivitySubscriptionUpgrade ActivityType = "subscription_upgrade"
)

type actionSpec struct {
	freeLimit int
	column    string
	activity  ActivityType
}

// Every ActionKind must have an entry here; see TestActionKindTableComplete.
var actionTable = map[ActionKind]actionSpec{
	ActionDMGeneration:       {freeLimit: 3, column: "dm_generations", activity: ActivityDMGeneration},
	ActionPricingCalculation: {freeLimit: 2, column: "pricing_calculations", activity: ActivityPricingCalculation},
	ActionMediaKitGeneration: {freeLimit: 1, column: "media_kit_generations", activity: ActivityMediaKitCreation},
}

// ActionKinds returns all metered kinds in a stable order.
func ActionKinds() []ActionKind {
	return []ActionKind{ActionDMGeneration, ActionPricingCalculation, ActionMediaKitGeneration}
}

// ParseActionKind converts a string to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidActionKind, s)
	}
	return kind, nil
}

func (k ActionKind) Valid() bool {
	_, ok := actionTable[k]
	return ok
}

// FreeLimit returns the monthly free-tier limit for the kind, 0 for unknown kinds.
func (k ActionKind) FreeLimit() int {
	return actionTable[k].freeLimit
}

// Column returns the user_usage column that counts the kind.
func (k ActionKind) Column() string {
	return actionTable[k].column
}

func (k ActionKind) ActivityType() ActivityType {
	return actionTable[k].activity
}
