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
	maxProjectNameLength        = 100
	maxProjectDescriptionLength = 500
)

var (
	ErrInvalidProjectPayload = errors.New("invalid project payload")
	ErrProjectNameRequired   = errors.New("project name is required")
	ErrNoProjectFields       = errors.New("no project fields to update")
)

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrProjectNameRequired
	}

	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	return domain.CreateProjectInput{Name: name, Description: description}, nil
}

// BuildUpdateProjectInput builds a partial update from the decoded request
// and the raw JSON fields. The raw map tells a field that was omitted apart
// from one sent as null or with the wrong type.
func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") {
		return domain.UpdateProjectInput{}, ErrNoProjectFields
	}

	var name *string
	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrProjectNameRequired
		}
		if utf8.RuneCountInString(value) > maxProjectNameLength {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		name = &value
	}

	var description *string
	if hasJSONField(raw, "description") {
		if req.Description == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(value) > maxProjectDescriptionLength {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		description = &value
	}

	return domain.UpdateProjectInput{Name: name, Description: description}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
