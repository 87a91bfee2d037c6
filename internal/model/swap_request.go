package model

// SwapStatus is the closed set of swap request states.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions leave s.
func (s SwapStatus) Terminal() bool {
	switch s {
	case SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// SwapActor identifies which party of a request may drive a transition.
type SwapActor int

const (
	ActorRequested SwapActor = iota // the counterparty
	ActorRequester                  // the creator
	ActorEither                     // requester or requested
)

// transition edge of the lifecycle table
type transition struct {
	from  SwapStatus
	to    SwapStatus
	actor SwapActor
}

// transitions is the single source of truth for the lifecycle:
//
//	pending  → accepted   requested user
//	pending  → rejected   requested user
//	pending  → cancelled  requester
//	accepted → completed  either party
//
// Everything else, including any edge out of a terminal state, is invalid.
var transitions = []transition{
	{SwapStatusPending, SwapStatusAccepted, ActorRequested},
	{SwapStatusPending, SwapStatusRejected, ActorRequested},
	{SwapStatusPending, SwapStatusCancelled, ActorRequester},
	{SwapStatusAccepted, SwapStatusCompleted, ActorEither},
}

// CanTransition reports whether (from, to) is an edge of the lifecycle table
// and, if so, which actor may take it.
func CanTransition(from, to SwapStatus) (SwapActor, bool) {
	for _, t := range transitions {
		if t.from == from && t.to == to {
			return t.actor, true
		}
	}
	return 0, false
}

// SwapRequest — one proposed skill exchange, maps to swap_requests
type SwapRequest struct {
	SwapRequestID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"swap_request_id"`
	RequesterID    string     `gorm:"type:uuid;not null"                             json:"requester_id"`
	RequestedID    string     `gorm:"type:uuid;not null"                             json:"requested_id"`
	SkillOfferedID string     `gorm:"type:uuid;not null"                             json:"skill_offered_id"`
	SkillWantedID  string     `gorm:"type:uuid;not null"                             json:"skill_wanted_id"`
	Message        string     `gorm:"type:text"                                      json:"message,omitempty"`
	Status         SwapStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	Timestamps

	Requester    *User  `gorm:"foreignKey:RequesterID;references:UserID"    json:"requester,omitempty"`
	Requested    *User  `gorm:"foreignKey:RequestedID;references:UserID"    json:"requested,omitempty"`
	SkillOffered *Skill `gorm:"foreignKey:SkillOfferedID;references:SkillID" json:"skill_offered,omitempty"`
	SkillWanted  *Skill `gorm:"foreignKey:SkillWantedID;references:SkillID"  json:"skill_wanted,omitempty"`
}

// TableName sets the table name.
func (SwapRequest) TableName() string { return "swap_requests" }

// MayAct reports whether userID is allowed to take the given edge on r.
func (r *SwapRequest) MayAct(userID string, actor SwapActor) bool {
	switch actor {
	case ActorRequester:
		return userID == r.RequesterID
	case ActorRequested:
		return userID == r.RequestedID
	case ActorEither:
		return userID == r.RequesterID || userID == r.RequestedID
	}
	return false
}

// Participant reports whether userID is either party of r.
func (r *SwapRequest) Participant(userID string) bool {
	return userID == r.RequesterID || userID == r.RequestedID
}

// OtherParty returns the counterpart of userID on r.
// Callers must check Participant first.
func (r *SwapRequest) OtherParty(userID string) string {
	if userID == r.RequesterID {
		return r.RequestedID
	}
	return r.RequesterID
}
