package core

// Role is a participant's authority level inside a room.
type Role int

const (
	// RoleParticipant is a regular room member.
	RoleParticipant Role = iota
	// RoleModerator may issue playback commands.
	RoleModerator
	// RoleOther covers roles the bot does not distinguish further.
	RoleOther
)

// Roster tracks who is currently present in a room and their role.
// It is rebuilt entirely from live membership events; nothing survives
// a reconnect.
type Roster struct {
	members map[string]Role
}

// NewRoster constructs a roster with no members.
func NewRoster() *Roster {
	return &Roster{
		members: make(map[string]Role),
	}
}

// OnJoin records or overwrites the role for nick. Returns true if the
// nick was newly added, false if an existing entry was updated.
// Duplicate joins are harmless; the stored role is simply replaced.
func (r *Roster) OnJoin(nick string, role Role) bool {
	_, exists := r.members[nick]
	r.members[nick] = role
	return !exists
}

// OnLeave removes the entry for nick. No-op if absent.
func (r *Roster) OnLeave(nick string) {
	delete(r.members, nick)
}

// RoleOf returns the stored role for nick. Absent members report
// RoleParticipant with ok=false; callers treat absent the same as
// any non-moderator role.
func (r *Roster) RoleOf(nick string) (Role, bool) {
	role, ok := r.members[nick]
	if !ok {
		return RoleParticipant, false
	}
	return role, true
}

// Size returns the number of tracked members.
func (r *Roster) Size() int {
	return len(r.members)
}
