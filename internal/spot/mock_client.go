package spot

import "context"

// MockClient is a mock implementation of Client. Each method delegates
// to its func field when set and returns a benign default otherwise.
type MockClient struct {
	ListOrganizationsFunc func(ctx context.Context) ([]Organization, error)

	ListRegionsFunc       func(ctx context.Context) ([]Region, error)
	GetRegionFunc         func(ctx context.Context, name string) (*Region, error)
	ListServerClassesFunc func(ctx context.Context) ([]ServerClassInfo, error)
	GetServerClassFunc    func(ctx context.Context, name string) (*ServerClassInfo, error)

	CreateCloudspaceFunc func(ctx context.Context, cs *Cloudspace) (*Cloudspace, error)
	GetCloudspaceFunc    func(ctx context.Context, namespace, name string) (*Cloudspace, error)
	ListCloudspacesFunc  func(ctx context.Context, namespace string) ([]Cloudspace, error)
	DeleteCloudspaceFunc func(ctx context.Context, namespace, name string) error

	CreateSpotNodePoolFunc     func(ctx context.Context, pool *SpotNodePool) (*SpotNodePool, error)
	GetSpotNodePoolFunc        func(ctx context.Context, namespace, name string) (*SpotNodePool, error)
	ListSpotNodePoolsFunc      func(ctx context.Context, namespace string) ([]SpotNodePool, error)
	DeleteSpotNodePoolFunc     func(ctx context.Context, namespace, name string) error
	CreateOnDemandNodePoolFunc func(ctx context.Context, pool *OnDemandNodePool) (*OnDemandNodePool, error)
	GetOnDemandNodePoolFunc    func(ctx context.Context, namespace, name string) (*OnDemandNodePool, error)
	ListOnDemandNodePoolsFunc  func(ctx context.Context, namespace string) ([]OnDemandNodePool, error)
	DeleteOnDemandNodePoolFunc func(ctx context.Context, namespace, name string) error

	GetPriceHistoryFunc func(ctx context.Context, serverClass string) (*PriceHistory, error)
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

// ListOrganizations mocks organization listing.
func (m *MockClient) ListOrganizations(ctx context.Context) ([]Organization, error) {
	if m.ListOrganizationsFunc != nil {
		return m.ListOrganizationsFunc(ctx)
	}
	return []Organization{{ID: "org-1", Name: "mock-org", DisplayName: "Mock Org", Namespace: "org-mock"}}, nil
}

// ListRegions mocks region listing.
func (m *MockClient) ListRegions(ctx context.Context) ([]Region, error) {
	if m.ListRegionsFunc != nil {
		return m.ListRegionsFunc(ctx)
	}
	return []Region{{Name: DefaultRegion}}, nil
}

// GetRegion mocks getting a region.
func (m *MockClient) GetRegion(ctx context.Context, name string) (*Region, error) {
	if m.GetRegionFunc != nil {
		return m.GetRegionFunc(ctx, name)
	}
	return &Region{Name: name}, nil
}

// ListServerClasses mocks server class listing.
func (m *MockClient) ListServerClasses(ctx context.Context) ([]ServerClassInfo, error) {
	if m.ListServerClassesFunc != nil {
		return m.ListServerClassesFunc(ctx)
	}
	return []ServerClassInfo{{Name: "gp.vs1.medium-iad"}}, nil
}

// GetServerClass mocks getting a server class.
func (m *MockClient) GetServerClass(ctx context.Context, name string) (*ServerClassInfo, error) {
	if m.GetServerClassFunc != nil {
		return m.GetServerClassFunc(ctx, name)
	}
	return &ServerClassInfo{Name: name}, nil
}

// CreateCloudspace mocks cloudspace creation.
func (m *MockClient) CreateCloudspace(ctx context.Context, cs *Cloudspace) (*Cloudspace, error) {
	if m.CreateCloudspaceFunc != nil {
		return m.CreateCloudspaceFunc(ctx, cs)
	}
	created := *cs
	return &created, nil
}

// GetCloudspace mocks getting a cloudspace.
func (m *MockClient) GetCloudspace(ctx context.Context, namespace, name string) (*Cloudspace, error) {
	if m.GetCloudspaceFunc != nil {
		return m.GetCloudspaceFunc(ctx, namespace, name)
	}
	return &Cloudspace{Name: name, Namespace: namespace, Phase: PhaseReady, Health: HealthHealthy}, nil
}

// ListCloudspaces mocks cloudspace listing.
func (m *MockClient) ListCloudspaces(ctx context.Context, namespace string) ([]Cloudspace, error) {
	if m.ListCloudspacesFunc != nil {
		return m.ListCloudspacesFunc(ctx, namespace)
	}
	return nil, nil
}

// DeleteCloudspace mocks cloudspace deletion.
func (m *MockClient) DeleteCloudspace(ctx context.Context, namespace, name string) error {
	if m.DeleteCloudspaceFunc != nil {
		return m.DeleteCloudspaceFunc(ctx, namespace, name)
	}
	return nil
}

// CreateSpotNodePool mocks spot pool creation.
func (m *MockClient) CreateSpotNodePool(ctx context.Context, pool *SpotNodePool) (*SpotNodePool, error) {
	if m.CreateSpotNodePoolFunc != nil {
		return m.CreateSpotNodePoolFunc(ctx, pool)
	}
	created := *pool
	if created.Name == "" {
		created.Name = "mock-spot-pool"
	}
	return &created, nil
}

// GetSpotNodePool mocks getting a spot pool.
func (m *MockClient) GetSpotNodePool(ctx context.Context, namespace, name string) (*SpotNodePool, error) {
	if m.GetSpotNodePoolFunc != nil {
		return m.GetSpotNodePoolFunc(ctx, namespace, name)
	}
	return &SpotNodePool{Name: name, Namespace: namespace}, nil
}

// ListSpotNodePools mocks spot pool listing.
func (m *MockClient) ListSpotNodePools(ctx context.Context, namespace string) ([]SpotNodePool, error) {
	if m.ListSpotNodePoolsFunc != nil {
		return m.ListSpotNodePoolsFunc(ctx, namespace)
	}
	return nil, nil
}

// DeleteSpotNodePool mocks spot pool deletion.
func (m *MockClient) DeleteSpotNodePool(ctx context.Context, namespace, name string) error {
	if m.DeleteSpotNodePoolFunc != nil {
		return m.DeleteSpotNodePoolFunc(ctx, namespace, name)
	}
	return nil
}

// CreateOnDemandNodePool mocks on-demand pool creation.
func (m *MockClient) CreateOnDemandNodePool(ctx context.Context, pool *OnDemandNodePool) (*OnDemandNodePool, error) {
	if m.CreateOnDemandNodePoolFunc != nil {
		return m.CreateOnDemandNodePoolFunc(ctx, pool)
	}
	created := *pool
	if created.Name == "" {
		created.Name = "mock-ondemand-pool"
	}
	return &created, nil
}

// GetOnDemandNodePool mocks getting an on-demand pool.
func (m *MockClient) GetOnDemandNodePool(ctx context.Context, namespace, name string) (*OnDemandNodePool, error) {
	if m.GetOnDemandNodePoolFunc != nil {
		return m.GetOnDemandNodePoolFunc(ctx, namespace, name)
	}
	return &OnDemandNodePool{Name: name, Namespace: namespace}, nil
}

// ListOnDemandNodePools mocks on-demand pool listing.
func (m *MockClient) ListOnDemandNodePools(ctx context.Context, namespace string) ([]OnDemandNodePool, error) {
	if m.ListOnDemandNodePoolsFunc != nil {
		return m.ListOnDemandNodePoolsFunc(ctx, namespace)
	}
	return nil, nil
}

// DeleteOnDemandNodePool mocks on-demand pool deletion.
func (m *MockClient) DeleteOnDemandNodePool(ctx context.Context, namespace, name string) error {
	if m.DeleteOnDemandNodePoolFunc != nil {
		return m.DeleteOnDemandNodePoolFunc(ctx, namespace, name)
	}
	return nil
}

// GetPriceHistory mocks fetching price history.
func (m *MockClient) GetPriceHistory(ctx context.Context, serverClass string) (*PriceHistory, error) {
	if m.GetPriceHistoryFunc != nil {
		return m.GetPriceHistoryFunc(ctx, serverClass)
	}
	return &PriceHistory{ServerClass: serverClass}, nil
}
