package domain

import "time"

// LeadStatus tracks a lead through the sales pipeline.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// Lead is a potential customer.
type Lead struct {
	LeadID       string     `json:"leadID"`
	BusinessID   string     `json:"businessID"`
	AssignedTo   string     `json:"assignedTo"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	Location     string     `json:"location"`
	Source       string     `json:"source"`
	Status       LeadStatus `json:"status"`
	FollowUpDate *time.Time `json:"followUpDate"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// LeadNote is a dated remark attached to a lead.
type LeadNote struct {
	NoteID     string    `json:"noteID"`
	BusinessID string    `json:"businessID"`
	LeadID     string    `json:"leadID"`
	UserID     string    `json:"userID"`
	Note       string    `json:"note"`
	NoteDate   time.Time `json:"noteDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Customer is a converted lead or a directly created buyer.
type Customer struct {
	CustomerID string    `json:"customerID"`
	BusinessID string    `json:"businessID"`
	LeadID     string    `json:"leadID"` // empty unless created via conversion
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	Location   string    `json:"location"`
	GSTNumber  string    `json:"gstNumber"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
