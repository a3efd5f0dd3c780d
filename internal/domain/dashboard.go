package domain

// DashboardStats is the summary served to the landing dashboard.
type DashboardStats struct {
	TotalBooks     int32          `json:"totalBooks"`
	AvailableBooks int32          `json:"availableBooks"`
	BorrowedBooks  int32          `json:"borrowedBooks"`
	Notifications  []Notification `json:"notifications"`
}
