package commitment

import (
	"fmt"
	"strings"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/constants"
)

// State is a week's derived commitment state. Only the promise text and
// claimed membership are durable; the state is recomputed from those plus
// the week's star total on every read.
type State int

const (
	StateNoPromise State = iota
	StatePromiseSet
	StateGoalMetPendingReflection
	StateClaimed
)

func (s State) String() string {
	switch s {
	case StateNoPromise:
		return "no promise"
	case StatePromiseSet:
		return "promise set"
	case StateGoalMetPendingReflection:
		return "goal met, reflection pending"
	case StateClaimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// Tracker derives weekly commitment states against a weekly star target.
type Tracker struct {
	weeklyTarget float64
}

func New(weeklyTarget float64) Tracker {
	return Tracker{weeklyTarget: weeklyTarget}
}

// StateFor derives the state for one week from its durable pieces and star
// total. A week that meets the goal without a promise still reaches
// reflection: the promise is optional, not a precondition for claiming.
func (t Tracker) StateFor(promise string, claimed bool, weekStars float64) State {
	if claimed {
		return StateClaimed
	}
	if weekStars >= t.weeklyTarget {
		return StateGoalMetPendingReflection
	}
	if promise != "" {
		return StatePromiseSet
	}
	return StateNoPromise
}

// ValidatePromise checks the text for the NoPromise -> PromiseSet transition.
func ValidatePromise(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("a promise needs some text")
	}
	return nil
}

// Claim performs the GoalMetPendingReflection -> Claimed transition and
// reports the display-only "exceeded" flag: whether the week's total cleared
// 1.5x the weekly target.
func (t Tracker) Claim(promise string, claimed bool, weekStars float64) (exceeded bool, err error) {
	state := t.StateFor(promise, claimed, weekStars)
	if state != StateGoalMetPendingReflection {
		return false, fmt.Errorf("cannot claim a week in state %q", state)
	}
	return weekStars > constants.ExceededFactor*t.weeklyTarget, nil
}

// Unclaim undoes a claim. The promise text is untouched; with the goal still
// met the derived state lands back on reflection pending.
func (t Tracker) Unclaim(claimed bool) error {
	if !claimed {
		return fmt.Errorf("week is not claimed")
	}
	return nil
}
