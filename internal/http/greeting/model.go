package greeting

// Data models the response payload for the greeting endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting naming the application" example:"This is demo."`
}

// Output is the response wrapper for the greeting endpoint.
type Output struct {
	Body Data
}
