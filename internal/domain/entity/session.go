package entity

// AuthPhase is the session's position in the authentication lifecycle.
// A single enum replaces the loading/authenticated/welcome boolean
// combinations that allowed impossible states.
type AuthPhase string

const (
	PhaseInitializing    AuthPhase = "initializing"
	PhaseCheckingSession AuthPhase = "checking-session"
	PhaseUnauthenticated AuthPhase = "unauthenticated"
	PhaseAuthenticated   AuthPhase = "authenticated"
)

// Session is the per-user state tree: who is signed in, what they are
// looking at, what they have filtered and what is in their cart. It is
// owned by exactly one logical actor, the current user session, so the
// entity itself carries no locking; the session manager serializes
// access.
type Session struct {
	UserID    string
	Phase     AuthPhase
	Cart      *Cart
	Criteria  FilterCriteria
	Navigator *Navigator
}

func NewSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		Phase:     PhaseInitializing,
		Cart:      NewCart(),
		Criteria:  DefaultFilterCriteria(),
		Navigator: NewNavigator(),
	}
}
