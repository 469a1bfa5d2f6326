package endpoints

// Endpoints groups every endpoint exposed by the HTTP router.
type Endpoints struct {
	PlannerEndpoint PlannerEndpoint
}
