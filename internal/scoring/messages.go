package scoring

// Flavor message pools. Strictly cosmetic: nothing here may feed back into
// a star total. Pool choice follows context priority reentry > presence >
// plain; the pick within a pool is uniform from the engine's rng.

var reentryMessages = []string{
	"Welcome back. The sky kept your place.",
	"A gap in the chart, then a bright return.",
	"Back in orbit. That one counts extra.",
	"Missed days fade fast when you show up again.",
}

var presenceMessages = []string{
	"Fully there for it. Bonus star dust.",
	"Present and accounted for.",
	"That kind of attention leaves a mark.",
	"Quiet focus, extra shine.",
}

var plainMessages = []string{
	"Logged. Another point of light.",
	"Steady does it.",
	"One more for the constellation.",
	"On the board.",
}

func (e *Engine) pickMessage(missed int, presence float64) string {
	pool := plainMessages
	switch {
	case missed >= 1:
		pool = reentryMessages
	case presence > 0:
		pool = presenceMessages
	}
	return pool[e.rng.Intn(len(pool))]
}
