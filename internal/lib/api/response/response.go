package response

import (
	"saleportal/internal/lib/clock"
	apierrors "saleportal/internal/lib/errors"
	"saleportal/internal/lib/pagination"
)

type Response struct {
	Data          interface{}  `json:"data,omitempty"`
	Success       bool         `json:"success"`
	StatusMessage string       `json:"status_message"`
	Timestamp     string       `json:"timestamp"`
	Pagination    *Pagination  `json:"pagination,omitempty"`
	Error         *ErrorDetail `json:"error,omitempty"`
	RequestID     string       `json:"request_id,omitempty"`
}

// Pagination echoes the requested window plus the display trio used for
// the "Displaying start - end of total" message.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Start      int `json:"start"`
	End        int `json:"end"`
}

// ErrorDetail provides structured error information in responses.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Data:          data,
		Success:       true,
		StatusMessage: "Success",
		Timestamp:     clock.Now(),
	}
}

func OkWithMessage(data interface{}, message string) Response {
	return Response{
		Data:          data,
		Success:       true,
		StatusMessage: message,
		Timestamp:     clock.Now(),
	}
}

// OkWithPage attaches the pagination block of a counted listing.
func OkWithPage(data interface{}, p pagination.Page) Response {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (p.Total + p.Limit - 1) / p.Limit
	}
	return Response{
		Data:          data,
		Success:       true,
		StatusMessage: "Success",
		Timestamp:     clock.Now(),
		Pagination: &Pagination{
			Page:       p.Number,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: totalPages,
			Start:      p.Start(),
			End:        p.End(),
		},
	}
}

// Error creates an error response with a simple message.
func Error(message string) Response {
	return Response{
		Success:       false,
		StatusMessage: message,
		Timestamp:     clock.Now(),
	}
}

// ErrorFromAPIError creates a response from an APIError.
func ErrorFromAPIError(err *apierrors.APIError) Response {
	return Response{
		Success:       false,
		StatusMessage: err.Message,
		Timestamp:     clock.Now(),
		Error: &ErrorDetail{
			Code:    string(err.Code),
			Message: err.Message,
			Details: err.Details,
		},
	}
}

// WithRequestID adds a request ID to the response.
func (r Response) WithRequestID(requestID string) Response {
	r.RequestID = requestID
	return r
}
