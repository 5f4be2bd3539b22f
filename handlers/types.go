package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
)

// GreetingResponse - GET / 응답
type GreetingResponse struct {
	Message string `json:"message"`
}

// HealthResponse - GET /health 응답
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse - 라우팅 실패 응답
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// User is a declared record with no endpoint yet.
type User struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// userBody is the wire form of User. Pointers let validation tell a
// missing or null field apart from "" and 0.
type userBody struct {
	Name *string `json:"name" binding:"required"`
	Age  *int    `json:"age" binding:"required"`
}

// DecodeUser is the binding entry point for endpoints that accept a User.
// Both fields must be present and non-null; "" and 0 are valid values.
func DecodeUser(body []byte) (*User, error) {
	var b userBody
	if err := binding.JSON.BindBody(body, &b); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	return &User{Name: *b.Name, Age: *b.Age}, nil
}
