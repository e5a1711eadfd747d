package domain

import "time"

type Project struct {
	ID          uint64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProjectInput struct {
	Name        string
	Description string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// Empty reports whether the partial update carries no fields at all.
func (in UpdateProjectInput) Empty() bool {
	return in.Name == nil && in.Description == nil
}
