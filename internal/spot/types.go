// Package spot provides a client for the Rackspace Spot control plane API.
//
// The API is Kubernetes-style: resources live under namespaces (one per
// organization) and are created, listed, and deleted through REST calls
// against the ngpc.rxt.io API group. Cloudspaces must exist before node
// pools that reference them; deletion runs in the reverse order.
package spot

import "time"

// Default endpoints for the production Spot control plane.
const (
	DefaultBaseURL = "https://spot.rackspace.com"
	DefaultAuthURL = "https://login.spot.rackspace.com"

	// DefaultPriceHistoryURL serves public spot market history, no auth required.
	DefaultPriceHistoryURL = "https://ngpc-prod-public-data.s3.us-east-2.amazonaws.com/history"
)

// Cloudspace defaults matching the control plane's own defaulting.
const (
	DefaultRegion            = "us-east-iad-1"
	DefaultKubernetesVersion = "1.31.1"
	DefaultCloud             = "default"
)

// Supported CNI options for a cloudspace.
const (
	CNICalico = "calico"
	CNICilium = "cilium"
	CNIByoCNI = "byocni"
)

// Organization is the billing and resource-scoping boundary. Every
// organization owns exactly one namespace under which cloudspaces and
// node pools are created. Organizations are created out-of-band.
type Organization struct {
	ID          string
	Name        string
	DisplayName string
	Namespace   string
}

// Region describes a datacenter region cloudspaces can be scheduled into.
type Region struct {
	Name               string
	Country            string
	Description        string
	ProviderType       string
	ProviderRegionName string
}

// ServerClassInfo describes a purchasable server class, including its
// on-demand cost and current spot market pricing.
type ServerClassInfo struct {
	Name            string
	DisplayName     string
	Category        string
	FlavorType      string
	CPU             string
	Memory          string
	Region          string
	Availability    string
	OnDemandCost    string
	SpotHammerPrice string
	SpotMarketPrice string
}

// Cloudspace is a managed Kubernetes cluster scoped to a region and a
// namespace. It owns zero or more node pools and must exist before any
// node pool referencing it is created.
type Cloudspace struct {
	Name              string
	Namespace         string
	Region            string
	KubernetesVersion string
	Webhook           string
	CNI               string
	HAControlPlane    bool
	Cloud             string

	// Status fields, populated by the control plane.
	APIServerEndpoint        string
	Phase                    string
	Health                   string
	CurrentKubernetesVersion string
	FirstReadyTimestamp      time.Time
}

// Cloudspace status phases reported by the control plane.
const (
	PhaseReady    = "Ready"
	PhaseFailed   = "Failed"
	HealthHealthy = "Healthy"
)

// Autoscaling configures optional autoscaling on a spot node pool.
type Autoscaling struct {
	Enabled  bool
	MinNodes int
	MaxNodes int
}

// SpotNodePool is a group of servers bid for on the spot market and
// attached to a cloudspace. Creation requires billing to be enabled on
// the owning organization; the control plane rejects it otherwise.
type SpotNodePool struct {
	Name        string
	Namespace   string
	Cloudspace  string
	ServerClass string
	Desired     int
	BidPrice    string
	Autoscaling Autoscaling

	// Status fields, populated by the control plane.
	BidStatus string
	WonCount  int
}

// OnDemandNodePool is a group of servers reserved at the fixed on-demand
// price and attached to a cloudspace.
type OnDemandNodePool struct {
	Name        string
	Namespace   string
	Cloudspace  string
	ServerClass string
	Desired     int

	// Status fields, populated by the control plane.
	ReservedCount  int
	ReservedStatus string
}

// PricePoint is a single observation in a server class's auction history.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// PriceHistory holds the public auction history for one server class.
type PriceHistory struct {
	ServerClass string
	History     []PricePoint
}
