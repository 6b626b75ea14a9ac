package testutil

import "github.com/google/uuid"

// Trace records finalization events for resources created from it. Example:
//
//	tr := testutil.NewTrace()
//	r1, r2 := tr.NewResource(), tr.NewResource()
//	... destroy the container holding r1, r2 ...
//	tr.Finalized() // -> []string{r1.ID, r2.ID}
type Trace struct {
	finalized []string
}

// NewTrace creates an empty finalization trace.
func NewTrace() *Trace { return &Trace{} }

// NewResource creates a resource with a unique ID bound to this trace.
func (tr *Trace) NewResource() Resource {
	return Resource{ID: uuid.NewString(), trace: tr}
}

// Finalized returns the IDs of finalized resources in call order.
func (tr *Trace) Finalized() []string { return tr.finalized }

// Count returns the number of finalizations recorded so far.
func (tr *Trace) Count() int { return len(tr.finalized) }

// Resource is a finalize-tracking element for container lifecycle tests. The
// unique ID makes finalization order assertable even for otherwise equal
// values.
type Resource struct {
	ID    string
	trace *Trace
}

// Finalize records this resource's ID on its trace.
func (r Resource) Finalize() {
	r.trace.finalized = append(r.trace.finalized, r.ID)
}
