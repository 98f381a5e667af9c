package match

import "fmt"

// Count judges the number of records a verification query matched.
//
// Evaluate is pure: it returns pass/fail and never raises. Turning a failed
// evaluation into a verification error, with the Describe text as the
// expected condition, is the caller's job.
type Count interface {
	Evaluate(actual int) bool
	Describe() string
}

type countMode int

const (
	modeExactly countMode = iota
	modeAtLeast
	modeAtMost
)

type count struct {
	mode countMode
	n    int
}

func (c count) Evaluate(actual int) bool {
	switch c.mode {
	case modeAtLeast:
		return actual >= c.n
	case modeAtMost:
		return actual <= c.n
	default:
		return actual == c.n
	}
}

func (c count) Describe() string {
	switch c.mode {
	case modeAtLeast:
		return fmt.Sprintf("at least %d calls", c.n)
	case modeAtMost:
		return fmt.Sprintf("at most %d calls", c.n)
	default:
		if c.n == 0 {
			return "no calls"
		}
		return fmt.Sprintf("exactly %d calls", c.n)
	}
}

// Exactly passes when the matched count equals n. Exactly(1) is the default
// count condition of the verification surface.
func Exactly(n int) Count {
	return count{mode: modeExactly, n: n}
}

// Times is an alias for Exactly.
func Times(n int) Count {
	return Exactly(n)
}

// AtLeast passes when the matched count is n or more.
func AtLeast(n int) Count {
	return count{mode: modeAtLeast, n: n}
}

// AtMost passes when the matched count is n or fewer.
func AtMost(n int) Count {
	return count{mode: modeAtMost, n: n}
}

// Never passes only when nothing matched. Equivalent to Exactly(0).
func Never() Count {
	return Exactly(0)
}
