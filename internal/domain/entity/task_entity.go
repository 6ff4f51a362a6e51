package entity

import "time"

// Task belongs to exactly one owner. Visibility and mutation are scoped to
// the owner; administrators bypass ownership only for deletion.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskWithOwner is the admin-facing view of a task, denormalized with the
// owner's name and email.
type TaskWithOwner struct {
	Task
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}
