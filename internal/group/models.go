package group

import "time"

type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	IsPublic    bool      `json:"is_public"`
	MemberCount int       `json:"member_count"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Member struct {
	GroupID  string    `json:"group_id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role"` // admin, member
	JoinedAt time.Time `json:"joined_at"`
}
