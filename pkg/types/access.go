package types

// AccessLevel is the resolved access tier for a user at evaluation time.
type AccessLevel string

const (
	AccessLevelNone         AccessLevel = "none"
	AccessLevelTrialLimited AccessLevel = "trial_limited"
	AccessLevelFull         AccessLevel = "full"
)

// RedirectTarget names the only four destinations a guard may choose.
// Empty means no redirect (allowed).
type RedirectTarget string

const (
	RedirectNone    RedirectTarget = ""
	RedirectAuth    RedirectTarget = "auth"
	RedirectAdmin   RedirectTarget = "admin"
	RedirectNeutral RedirectTarget = "neutral"
	RedirectBlocked RedirectTarget = "blocked"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)
