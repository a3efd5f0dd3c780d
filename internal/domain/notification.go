package domain

type Notification struct {
	ID        int32  `json:"id"`
	UserID    int32  `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationInput is a pending notification to be written as part of a
// circulation transaction. A nil UserID means "broadcast": one row is
// materialized per admin existing at insert time.
type NotificationInput struct {
	UserID  *int32
	Title   string
	Message string
}

// ForUser addresses a notification to a single user.
func ForUser(userID int32, title, message string) NotificationInput {
	return NotificationInput{UserID: &userID, Title: title, Message: message}
}

// ForAdmins addresses a notification to every current admin.
func ForAdmins(title, message string) NotificationInput {
	return NotificationInput{Title: title, Message: message}
}
