package orchestration

// ResourceKind identifies the type of a tracked resource.
type ResourceKind string

// Tracked resource kinds, in the only creation order the control plane
// accepts: a cloudspace first, then pools referencing it.
const (
	KindCloudspace       ResourceKind = "cloudspace"
	KindSpotNodePool     ResourceKind = "spot node pool"
	KindOnDemandNodePool ResourceKind = "on-demand node pool"
)

// Resource identifies one created resource.
type Resource struct {
	Kind      ResourceKind
	Namespace string
	Name      string
}

// String returns "kind namespace/name" for operator-facing output.
func (r Resource) String() string {
	return string(r.Kind) + " " + r.Namespace + "/" + r.Name
}

// Tracker accumulates the identifiers of resources created during a
// run, in creation order, so they can be torn down even on partial
// failure. It is scoped to one run and passed explicitly through the
// orchestration call chain.
type Tracker struct {
	created []Resource
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends a successfully created resource.
func (t *Tracker) Record(kind ResourceKind, namespace, name string) {
	t.created = append(t.created, Resource{Kind: kind, Namespace: namespace, Name: name})
}

// Created returns the tracked resources in creation order.
func (t *Tracker) Created() []Resource {
	out := make([]Resource, len(t.created))
	copy(out, t.created)
	return out
}

// CleanupOrder returns the tracked resources in reverse creation order:
// node pools before the cloudspace that owns them.
func (t *Tracker) CleanupOrder() []Resource {
	out := make([]Resource, len(t.created))
	for i, r := range t.created {
		out[len(t.created)-1-i] = r
	}
	return out
}

// Len returns the number of tracked resources.
func (t *Tracker) Len() int {
	return len(t.created)
}
