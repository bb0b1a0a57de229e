package domain

import "time"

// Role is a user role claimed by the backend on login.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleArtisan  Role = "artisan"
	RoleAdmin    Role = "admin"
)

// Session is the explicit authentication context passed through the service.
// It replaces ambient token storage: the bearer token, the role claim and the
// user identity travel together and are injected where needed.
type Session struct {
	ID        string // внутренний идентификатор сессии (uuid)
	Token     string // bearer-токен, выданный backend; для этого сервиса непрозрачен
	Role      Role
	UserID    string
	CreatedAt time.Time
}

// Actor maps the session role to a lifecycle actor.
func (s *Session) Actor() Actor {
	if s.Role == RoleArtisan {
		return ActorArtisan
	}
	return ActorCustomer
}
