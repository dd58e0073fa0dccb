package dto

// UpcomingItem is a due health record or vaccination surfaced on the
// dashboard.
type UpcomingItem struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	RecordType string `json:"record_type"`
	DueDate    string `json:"due_date"`
	PetID      int    `json:"pet_id"`
	PetName    string `json:"pet_name"`
}

type DashboardResponse struct {
	UpcomingItems []UpcomingItem `json:"upcoming_items"`
	PetCount      int64          `json:"pet_count"`
}
