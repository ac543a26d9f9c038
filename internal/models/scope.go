package models

// ScopeKind tells which ordered collection a Scope addresses.
type ScopeKind int

const (
	// GroupScope is the ordered list of a user's groups.
	GroupScope ScopeKind = iota
	// RecordScope is the ordered list of a user's records inside one group.
	RecordScope
)

// Scope identifies a collection whose sort_order values must stay dense.
type Scope struct {
	Kind   ScopeKind
	UserID string
	// GroupID selects the record list; empty selects the ungrouped records.
	// Ignored for GroupScope.
	GroupID string
}

// GroupsOf returns the scope of a user's group list.
func GroupsOf(userID string) Scope {
	return Scope{Kind: GroupScope, UserID: userID}
}

// RecordsIn returns the scope of a user's records in groupID ("" for ungrouped).
func RecordsIn(userID, groupID string) Scope {
	return Scope{Kind: RecordScope, UserID: userID, GroupID: groupID}
}
