package models

// Membership is the two-state privilege level of a user. The only allowed
// transition is Regular -> Member.
type Membership string

const (
	Regular Membership = "regular"
	Member  Membership = "member"
)

func (m Membership) Valid() bool {
	return m == Regular || m == Member
}

// Promote returns the Member state and whether that is a change from m.
func (m Membership) Promote() (Membership, bool) {
	return Member, m != Member
}

// CanBecome reports whether moving from m to next respects the one-way rule.
func (m Membership) CanBecome(next Membership) bool {
	if !next.Valid() {
		return false
	}
	return m != Member || next == Member
}
