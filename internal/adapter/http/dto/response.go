package dto

// Response is the uniform success envelope. Failures use the same shape
// through apierrors.JsonErr.
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func Success(data any) Response {
	return Response{Success: true, Data: data}
}

// SuccessList carries a count next to the data so clients don't have to
// measure the slice themselves.
func SuccessList(data any, count int) Response {
	c := count
	return Response{Success: true, Data: data, Count: &c}
}

func SuccessMessage(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}
