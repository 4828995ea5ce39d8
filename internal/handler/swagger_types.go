package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// UpdateDetailsRequest represents the identification step request body.
type UpdateDetailsRequest struct {
	RestaurantName     string `json:"restaurant_name" binding:"required" example:"مطعم الذواقة"`
	CommercialRegister string `json:"commercial_register" example:"1010123456"`
}

// ShareRequest represents the share-report request body.
type ShareRequest struct {
	Email string `json:"email" example:"inspections@mc.gov.sa"`
}

// --- Response Types ---

// PreviewResponse represents a staged photo preview URL.
type PreviewResponse struct {
	PreviewURL string `json:"preview_url" example:"https://s3.me-south-1.amazonaws.com/fahs-photos/...?X-Amz-Signature=..."`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
