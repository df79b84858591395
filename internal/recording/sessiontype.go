package recording

// SessionType categorizes a recording for naming and downstream routing.
type SessionType string

const (
	SessionCoaching SessionType = "Coaching"
	SessionGamePlan SessionType = "GamePlan"
	SessionSAT      SessionType = "SAT"
	SessionMISC     SessionType = "MISC"
	SessionAdmin    SessionType = "Admin"
)

// Prefix returns the identifier token for the session type. Admin sessions
// share the MISC token; anything unrecognized names as Coaching.
func (s SessionType) Prefix() string {
	switch s {
	case SessionGamePlan:
		return "GamePlan"
	case SessionSAT:
		return "SAT"
	case SessionMISC, SessionAdmin:
		return "MISC"
	default:
		return "Coaching"
	}
}
