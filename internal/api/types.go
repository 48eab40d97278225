package api

// AggregateRequest is the body of the multi-recipe aggregation endpoints.
// IDs is a pointer so a missing "ids" key (400) can be told apart from an
// empty list (which resolves to no recipes and yields 404 downstream).
type AggregateRequest struct {
	IDs *[]int `json:"ids"`
}
