package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

const (
	maxTaskTitleLength       = 200
	maxTaskDescriptionLength = 2000
	maxCommentTextLength     = 1000

	// DefaultCommentUserID is used when a comment arrives without a userId.
	DefaultCommentUserID = "user1"
)

var (
	ErrInvalidTaskPayload   = errors.New("invalid task payload")
	ErrTaskTitleRequired    = errors.New("task title is required")
	ErrTaskAssigneeRequired = errors.New("task assignee is required")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrNoTaskFields         = errors.New("no task fields to update")

	ErrCommentTextRequired = errors.New("comment text is required")
)

func BuildCreateTaskInput(projectID uint64, req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrTaskTitleRequired
	}

	assignedTo := strings.TrimSpace(req.AssignedTo)
	if assignedTo == "" {
		return domain.CreateTaskInput{}, ErrTaskAssigneeRequired
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskStatus
		}
	}

	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	return domain.CreateTaskInput{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		AssignedTo:  assignedTo,
		Status:      status,
	}, nil
}

// BuildUpdateTaskInput builds a partial update from the decoded request and
// the raw JSON fields, so an omitted field is left untouched while a null or
// wrong-typed one is rejected.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrNoTaskFields
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrTaskTitleRequired
		}
		if utf8.RuneCountInString(value) > maxTaskTitleLength {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var description *string
	if hasJSONField(raw, "description") {
		if req.Description == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(value) > maxTaskDescriptionLength {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		description = &value
	}

	var assignedTo *string
	if hasJSONField(raw, "assignedTo") {
		if req.AssignedTo == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.AssignedTo)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrTaskAssigneeRequired
		}
		assignedTo = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskStatus
		}
		status = &value
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: description,
		AssignedTo:  assignedTo,
		Status:      status,
	}, nil
}

// BuildCommentInput trims the comment and applies the default author.
func BuildCommentInput(req dto.AddCommentRequest) (userID, text string, err error) {
	text = strings.TrimSpace(req.Text)
	if text == "" {
		return "", "", ErrCommentTextRequired
	}
	if utf8.RuneCountInString(text) > maxCommentTextLength {
		return "", "", ErrInvalidTaskPayload
	}

	userID = DefaultCommentUserID
	if req.UserID != nil && strings.TrimSpace(*req.UserID) != "" {
		userID = strings.TrimSpace(*req.UserID)
	}

	return userID, text, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "assignedTo") ||
		hasJSONField(raw, "status")
}
