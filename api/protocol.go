package api

import "taskboard/domain"

const requestBodyMaxSize = 64 * 1024 // 64 KiB

// response is the uniform envelope every endpoint returns.
type response struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func ok(data any) response {
	return response{Success: true, Data: data}
}

func fail(msg string) response {
	return response{Success: false, Error: msg}
}

func invalid(details []domain.FieldError) response {
	return response{Success: false, Error: "validation failed", Details: details}
}
