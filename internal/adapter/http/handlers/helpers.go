package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// bindPartialJSON decodes the request body both into the typed request and
// into a raw field map, so PATCH validation can tell omitted fields apart
// from null or mistyped ones.
func bindPartialJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, err
	}

	return raw, nil
}
