package spot

import "context"

// OrganizationLister lists the organizations the token has access to.
// The first organization's namespace is the scope for all resource calls.
type OrganizationLister interface {
	// ListOrganizations lists all organizations visible to the caller.
	ListOrganizations(ctx context.Context) ([]Organization, error)
}

// CatalogReader provides read-only access to the region and server class
// catalog. All methods are safe to call repeatedly.
type CatalogReader interface {
	// ListRegions lists all available regions.
	ListRegions(ctx context.Context) ([]Region, error)

	// GetRegion returns a single region by name.
	GetRegion(ctx context.Context, name string) (*Region, error)

	// ListServerClasses lists all available server classes.
	ListServerClasses(ctx context.Context) ([]ServerClassInfo, error)

	// GetServerClass returns a single server class by name.
	GetServerClass(ctx context.Context, name string) (*ServerClassInfo, error)
}

// CloudspaceManager manages cloudspace lifecycle. Creation is not
// idempotent; listing and deletion are safe to call repeatedly.
type CloudspaceManager interface {
	// CreateCloudspace creates a new cloudspace and returns the created
	// object as the control plane sees it.
	CreateCloudspace(ctx context.Context, cs *Cloudspace) (*Cloudspace, error)

	// GetCloudspace returns a cloudspace by namespace and name.
	GetCloudspace(ctx context.Context, namespace, name string) (*Cloudspace, error)

	// ListCloudspaces lists all cloudspaces in a namespace.
	ListCloudspaces(ctx context.Context, namespace string) ([]Cloudspace, error)

	// DeleteCloudspace deletes a cloudspace. Deletion cascades to the
	// cloudspace's node pools on the control plane side.
	DeleteCloudspace(ctx context.Context, namespace, name string) error
}

// NodePoolManager manages spot and on-demand node pool lifecycle.
type NodePoolManager interface {
	// CreateSpotNodePool creates a spot node pool. A lowercase UUID name
	// is generated when pool.Name is empty.
	CreateSpotNodePool(ctx context.Context, pool *SpotNodePool) (*SpotNodePool, error)

	// GetSpotNodePool returns a spot node pool by namespace and name.
	GetSpotNodePool(ctx context.Context, namespace, name string) (*SpotNodePool, error)

	// ListSpotNodePools lists all spot node pools in a namespace.
	ListSpotNodePools(ctx context.Context, namespace string) ([]SpotNodePool, error)

	// DeleteSpotNodePool deletes a spot node pool.
	DeleteSpotNodePool(ctx context.Context, namespace, name string) error

	// CreateOnDemandNodePool creates an on-demand node pool. A lowercase
	// UUID name is generated when pool.Name is empty.
	CreateOnDemandNodePool(ctx context.Context, pool *OnDemandNodePool) (*OnDemandNodePool, error)

	// GetOnDemandNodePool returns an on-demand node pool by namespace and name.
	GetOnDemandNodePool(ctx context.Context, namespace, name string) (*OnDemandNodePool, error)

	// ListOnDemandNodePools lists all on-demand node pools in a namespace.
	ListOnDemandNodePools(ctx context.Context, namespace string) ([]OnDemandNodePool, error)

	// DeleteOnDemandNodePool deletes an on-demand node pool.
	DeleteOnDemandNodePool(ctx context.Context, namespace, name string) error
}

// MarketDataReader provides public market data. No authentication required.
type MarketDataReader interface {
	// GetPriceHistory returns the public auction history for a server class.
	GetPriceHistory(ctx context.Context, serverClass string) (*PriceHistory, error)
}

// Client is the full Spot API surface consumed by the orchestrator.
type Client interface {
	OrganizationLister
	CatalogReader
	CloudspaceManager
	NodePoolManager
	MarketDataReader
}
