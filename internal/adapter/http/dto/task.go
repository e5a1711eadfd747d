package dto

type TaskItem struct {
	ID          uint64        `json:"id"`
	ProjectID   uint64        `json:"projectId"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	AssignedTo  string        `json:"assignedTo"`
	Status      string        `json:"status"`
	Comments    []CommentItem `json:"comments"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// CommentItem has no id of its own: a comment is identified by its position
// in the task's comment sequence.
type CommentItem struct {
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	AssignedTo  string  `json:"assignedTo" binding:"required,max=100"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in_progress done"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AssignedTo  *string `json:"assignedTo"`
	Status      *string `json:"status"`
}

type AddCommentRequest struct {
	Text   string  `json:"text" binding:"required,max=1000"`
	UserID *string `json:"userId" binding:"omitempty,max=100"`
}
