package spot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// oauthClientID is the public OAuth client ID for the Spot control plane.
const oauthClientID = "mwG3lUMV8KyeMqHe4fJ5Bb3nM1vBvRNa"

const defaultTimeout = 30 * time.Second

// RealClient implements Client against the Spot REST API.
//
// Transient transport failures are retried by the underlying
// retryablehttp client; API-level failures are never retried here and
// surface as *APIError for the caller to handle.
type RealClient struct {
	baseURL      string
	authURL      string
	priceURL     string
	refreshToken string
	accessToken  string
	http         *retryablehttp.Client
	public       *http.Client
}

// Option configures a RealClient.
type Option func(*RealClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *RealClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithAuthURL overrides the OAuth endpoint.
func WithAuthURL(u string) Option {
	return func(c *RealClient) { c.authURL = strings.TrimRight(u, "/") }
}

// WithPriceHistoryURL overrides the public market data endpoint.
func WithPriceHistoryURL(u string) Option {
	return func(c *RealClient) { c.priceURL = strings.TrimRight(u, "/") }
}

// WithRetryMax overrides the transport retry budget.
func WithRetryMax(n int) Option {
	return func(c *RealClient) { c.http.RetryMax = n }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *RealClient) {
		c.http.HTTPClient.Timeout = d
		c.public.Timeout = d
	}
}

// NewClient creates a client and exchanges the refresh token for an
// access token. An authentication failure is returned before any
// resource call can be made.
func NewClient(ctx context.Context, refreshToken string, opts ...Option) (*RealClient, error) {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = defaultTimeout
	// Hand back the final response after retries are exhausted so API
	// failures keep their status code instead of collapsing into a
	// transport error.
	rc.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		return resp, err
	}

	c := &RealClient{
		baseURL:      DefaultBaseURL,
		authURL:      DefaultAuthURL,
		priceURL:     DefaultPriceHistoryURL,
		refreshToken: refreshToken,
		http:         rc,
		public:       cleanhttp.DefaultClient(),
	}
	c.public.Timeout = defaultTimeout

	for _, opt := range opts {
		opt(c)
	}

	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// authenticate exchanges the refresh token for a bearer token.
func (c *RealClient) authenticate(ctx context.Context) error {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {oauthClientID},
		"refresh_token": {c.refreshToken},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.authURL+"/oauth/token", []byte(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read auth response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: "authentication failed: " + strings.TrimSpace(string(body))}
	}

	var token struct {
		IDToken string `json:"id_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("failed to parse auth response: %w", err)
	}
	if token.IDToken == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to obtain access token"}
	}

	c.accessToken = token.IDToken
	return nil
}

// do issues an authenticated API request and decodes the response into out.
// A 401 triggers one re-authentication before the request is retried.
func (c *RealClient) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, err := c.doOnce(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()
		if err := c.authenticate(ctx); err != nil {
			return err
		}
		resp, err = c.doOnce(ctx, method, path, payload)
		if err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: apiErrorMessage(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *RealClient) doOnce(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body any
	if payload != nil {
		body = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "spotctl")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		// The error handler hands back the final response alongside the
		// error, so the body must be closed here.
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// apiErrorMessage extracts the server message from an error body,
// falling back to the raw body when it is not the usual JSON shape.
func apiErrorMessage(body []byte) string {
	var detail struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Message != "" {
		return detail.Message
	}
	return strings.TrimSpace(string(body))
}

// --- OrganizationLister ---

// ListOrganizations lists all organizations visible to the caller.
func (c *RealClient) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var resp organizationsResponse
	if err := c.do(ctx, http.MethodGet, organizationsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	orgs := make([]Organization, 0, len(resp.Organizations))
	for _, o := range resp.Organizations {
		orgs = append(orgs, o.toModel())
	}
	return orgs, nil
}

// --- CatalogReader ---

// ListRegions lists all available regions.
func (c *RealClient) ListRegions(ctx context.Context) ([]Region, error) {
	var resp listResponse[regionObject]
	if err := c.do(ctx, http.MethodGet, regionsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	regions := make([]Region, 0, len(resp.Items))
	for _, r := range resp.Items {
		regions = append(regions, r.toModel())
	}
	return regions, nil
}

// GetRegion returns a single region by name.
func (c *RealClient) GetRegion(ctx context.Context, name string) (*Region, error) {
	var obj regionObject
	if err := c.do(ctx, http.MethodGet, regionsPath+"/"+name, nil, &obj); err != nil {
		return nil, fmt.Errorf("failed to get region %s: %w", name, err)
	}
	region := obj.toModel()
	return &region, nil
}

// ListServerClasses lists all available server classes.
func (c *RealClient) ListServerClasses(ctx context.Context) ([]ServerClassInfo, error) {
	var resp listResponse[serverClassObject]
	if err := c.do(ctx, http.MethodGet, serverClassesPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list server classes: %w", err)
	}
	classes := make([]ServerClassInfo, 0, len(resp.Items))
	for _, s := range resp.Items {
		classes = append(classes, s.toModel())
	}
	return classes, nil
}

// GetServerClass returns a single server class by name.
func (c *RealClient) GetServerClass(ctx context.Context, name string) (*ServerClassInfo, error) {
	var obj serverClassObject
	if err := c.do(ctx, http.MethodGet, serverClassesPath+"/"+name, nil, &obj); err != nil {
		return nil, fmt.Errorf("failed to get server class %s: %w", name, err)
	}
	class := obj.toModel()
	return &class, nil
}

// --- CloudspaceManager ---

// CreateCloudspace creates a new cloudspace.
func (c *RealClient) CreateCloudspace(ctx context.Context, cs *Cloudspace) (*Cloudspace, error) {
	in := *cs
	if in.KubernetesVersion == "" {
		in.KubernetesVersion = DefaultKubernetesVersion
	}
	if in.CNI == "" {
		in.CNI = CNICalico
	}
	if in.Cloud == "" {
		in.Cloud = DefaultCloud
	}

	var obj cloudspaceObject
	path := namespacedBasePath + in.Namespace + "/cloudspaces"
	if err := c.do(ctx, http.MethodPost, path, cloudspaceToWire(&in), &obj); err != nil {
		return nil, fmt.Errorf("failed to create cloudspace %s: %w", in.Name, err)
	}
	created := obj.toModel()
	return &created, nil
}

// GetCloudspace returns a cloudspace by namespace and name.
func (c *RealClient) GetCloudspace(ctx context.Context, namespace, name string) (*Cloudspace, error) {
	var obj cloudspaceObject
	path := namespacedBasePath + namespace + "/cloudspaces/" + name
	if err := c.do(ctx, http.MethodGet, path, nil, &obj); err != nil {
		return nil, fmt.Errorf("failed to get cloudspace %s: %w", name, err)
	}
	cs := obj.toModel()
	return &cs, nil
}

// ListCloudspaces lists all cloudspaces in a namespace.
func (c *RealClient) ListCloudspaces(ctx context.Context, namespace string) ([]Cloudspace, error) {
	var resp listResponse[cloudspaceObject]
	path := namespacedBasePath + namespace + "/cloudspaces"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list cloudspaces: %w", err)
	}
	spaces := make([]Cloudspace, 0, len(resp.Items))
	for _, item := range resp.Items {
		spaces = append(spaces, item.toModel())
	}
	return spaces, nil
}

// DeleteCloudspace deletes a cloudspace.
func (c *RealClient) DeleteCloudspace(ctx context.Context, namespace, name string) error {
	path := namespacedBasePath + namespace + "/cloudspaces/" + name
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete cloudspace %s: %w", name, err)
	}
	return nil
}

// --- NodePoolManager ---

// CreateSpotNodePool creates a spot node pool.
func (c *RealClient) CreateSpotNodePool(ctx context.Context, pool *SpotNodePool) (*SpotNodePool, error) {
	in := *pool
	if in.Name == "" {
		in.Name = uuid.NewString()
	}

	var obj spotPoolObject
	path := namespacedBasePath + in.Namespace + "/spotnodepools"
	if err := c.do(ctx, http.MethodPost, path, spotPoolToWire(&in), &obj); err != nil {
		return nil, fmt.Errorf("failed to create spot node pool %s: %w", in.Name, err)
	}
	created := obj.toModel()
	return &created, nil
}

// GetSpotNodePool returns a spot node pool by namespace and name.
func (c *RealClient) GetSpotNodePool(ctx context.Context, namespace, name string) (*SpotNodePool, error) {
	var obj spotPoolObject
	path := namespacedBasePath + namespace + "/spotnodepools/" + name
	if err := c.do(ctx, http.MethodGet, path, nil, &obj); err != nil {
		return nil, fmt.Errorf("failed to get spot node pool %s: %w", name, err)
	}
	pool := obj.toModel()
	return &pool, nil
}

// ListSpotNodePools lists all spot node pools in a namespace.
func (c *RealClient) ListSpotNodePools(ctx context.Context, namespace string) ([]SpotNodePool, error) {
	var resp listResponse[spotPoolObject]
	path := namespacedBasePath + namespace + "/spotnodepools"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list spot node pools: %w", err)
	}
	pools := make([]SpotNodePool, 0, len(resp.Items))
	for _, item := range resp.Items {
		pools = append(pools, item.toModel())
	}
	return pools, nil
}

// DeleteSpotNodePool deletes a spot node pool.
func (c *RealClient) DeleteSpotNodePool(ctx context.Context, namespace, name string) error {
	path := namespacedBasePath + namespace + "/spotnodepools/" + name
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete spot node pool %s: %w", name, err)
	}
	return nil
}

// CreateOnDemandNodePool creates an on-demand node pool.
func (c *RealClient) CreateOnDemandNodePool(ctx context.Context, pool *OnDemandNodePool) (*OnDemandNodePool, error) {
	in := *pool
	if in.Name == "" {
		in.Name = uuid.NewString()
	}

	var obj onDemandPoolObject
	path := namespacedBasePath + in.Namespace + "/ondemandnodepools"
	if err := c.do(ctx, http.MethodPost, path, onDemandPoolToWire(&in), &obj); err != nil {
		return nil, fmt.Errorf("failed to create on-demand node pool %s: %w", in.Name, err)
	}
	created := obj.toModel()
	return &created, nil
}

// GetOnDemandNodePool returns an on-demand node pool by namespace and name.
func (c *RealClient) GetOnDemandNodePool(ctx context.Context, namespace, name string) (*OnDemandNodePool, error) {
	var obj onDemandPoolObject
	path := namespacedBasePath + namespace + "/ondemandnodepools/" + name
	if err := c.do(ctx, http.MethodGet, path, nil, &obj); err != nil {
		return nil, fmt.Errorf("failed to get on-demand node pool %s: %w", name, err)
	}
	pool := obj.toModel()
	return &pool, nil
}

// ListOnDemandNodePools lists all on-demand node pools in a namespace.
func (c *RealClient) ListOnDemandNodePools(ctx context.Context, namespace string) ([]OnDemandNodePool, error) {
	var resp listResponse[onDemandPoolObject]
	path := namespacedBasePath + namespace + "/ondemandnodepools"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list on-demand node pools: %w", err)
	}
	pools := make([]OnDemandNodePool, 0, len(resp.Items))
	for _, item := range resp.Items {
		pools = append(pools, item.toModel())
	}
	return pools, nil
}

// DeleteOnDemandNodePool deletes an on-demand node pool.
func (c *RealClient) DeleteOnDemandNodePool(ctx context.Context, namespace, name string) error {
	path := namespacedBasePath + namespace + "/ondemandnodepools/" + name
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete on-demand node pool %s: %w", name, err)
	}
	return nil
}

// --- MarketDataReader ---

// GetPriceHistory returns the public auction history for a server class.
// The endpoint is unauthenticated and served separately from the API.
func (c *RealClient) GetPriceHistory(ctx context.Context, serverClass string) (*PriceHistory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.priceURL+"/"+serverClass, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.public.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to get price history for %s", serverClass),
		}
	}

	var history priceHistoryResponse
	if err := json.Unmarshal(body, &history); err != nil {
		return nil, fmt.Errorf("failed to parse price history: %w", err)
	}
	return &PriceHistory{ServerClass: history.Auction, History: history.History}, nil
}

// Interface compliance.
var _ Client = (*RealClient)(nil)
