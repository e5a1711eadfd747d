package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"taskboard/pkg/translator"
)

// JsonErr is the failure half of the uniform response envelope. The HTTP
// status code travels on the response itself; Code keeps it available to
// callers treating the value as a plain error.
type JsonErr struct {
	Code    int      `json:"-"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Success: false, Message: GetTransErrorMsg(msgKey, lang)}
}

// CreateValidationError is CreateError plus field-level detail messages.
func CreateValidationError(code int, msgKey string, lang string, details []string) JsonErr {
	err := CreateError(code, msgKey, lang)
	err.Errors = details
	return err
}

// GetTransErrorMsg retrieves the translated message for a key.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
