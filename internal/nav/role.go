package nav

import "fmt"

// RoleKind tags what a vertical section is.
type RoleKind int

const (
	RoleStart RoleKind = iota
	RoleEnd
	RoleGroupIntro
	RoleGroupBody
)

func (k RoleKind) String() string {
	switch k {
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleGroupIntro:
		return "intro"
	case RoleGroupBody:
		return "body"
	default:
		return fmt.Sprintf("role(%d)", int(k))
	}
}

// Role is the derived role of a vertical index. Group is -1 for the
// standalone start and end sections.
type Role struct {
	Kind  RoleKind
	Group int
}

// Standalone reports whether the section belongs to no group.
func (r Role) Standalone() bool {
	return r.Kind == RoleStart || r.Kind == RoleEnd
}

func (r Role) String() string {
	if r.Standalone() {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", r.Kind, r.Group)
}

// RoleOf derives the role of vertical index v within sectionCount sections.
// The start check wins when sectionCount is 1.
func RoleOf(v, sectionCount int) Role {
	switch {
	case v == 0:
		return Role{Kind: RoleStart, Group: -1}
	case v == sectionCount-1:
		return Role{Kind: RoleEnd, Group: -1}
	}
	pair := v - 1
	group := pair / 2
	if pair%2 == 0 {
		return Role{Kind: RoleGroupIntro, Group: group}
	}
	return Role{Kind: RoleGroupBody, Group: group}
}

// IntroIndex is the vertical index of group g's intro section.
func IntroIndex(g int) int {
	return 2*g + 1
}

// BodyIndex is the vertical index of group g's body section.
func BodyIndex(g int) int {
	return 2*g + 2
}
