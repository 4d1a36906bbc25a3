package spot

import "time"

// Wire representations of the Kubernetes-style API objects. Conversions
// between wire and model types live here so the client methods stay flat.

const (
	apiVersion         = "ngpc.rxt.io/v1"
	kindCloudspace     = "CloudSpace"
	kindSpotPool       = "SpotNodePool"
	kindOnDemandPool   = "OnDemandNodePool"
	organizationsPath  = "/apis/auth.ngpc.rxt.io/v1/organizations"
	regionsPath        = "/apis/ngpc.rxt.io/v1/regions"
	serverClassesPath  = "/apis/ngpc.rxt.io/v1/serverclasses"
	namespacedBasePath = "/apis/ngpc.rxt.io/v1/namespaces/"
)

type objectMeta struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

type organizationsResponse struct {
	Organizations []organizationObject `json:"organizations"`
}

type organizationObject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Metadata    struct {
		Namespace string `json:"namespace"`
	} `json:"metadata"`
}

func (o organizationObject) toModel() Organization {
	return Organization{
		ID:          o.ID,
		Name:        o.Name,
		DisplayName: o.DisplayName,
		Namespace:   o.Metadata.Namespace,
	}
}

type regionObject struct {
	Metadata objectMeta `json:"metadata"`
	Spec     struct {
		Country     string `json:"country"`
		Description string `json:"description"`
		Provider    struct {
			ProviderType       string `json:"providerType"`
			ProviderRegionName string `json:"providerRegionName"`
		} `json:"provider"`
	} `json:"spec"`
}

func (r regionObject) toModel() Region {
	return Region{
		Name:               r.Metadata.Name,
		Country:            r.Spec.Country,
		Description:        r.Spec.Description,
		ProviderType:       r.Spec.Provider.ProviderType,
		ProviderRegionName: r.Spec.Provider.ProviderRegionName,
	}
}

type serverClassObject struct {
	Metadata objectMeta `json:"metadata"`
	Spec     struct {
		DisplayName string `json:"displayName"`
		Category    string `json:"category"`
		FlavorType  string `json:"flavorType"`
		Resources   struct {
			CPU    string `json:"cpu"`
			Memory string `json:"memory"`
		} `json:"resources"`
		Region          string `json:"region"`
		Availability    string `json:"availability"`
		OnDemandPricing struct {
			Cost string `json:"cost"`
		} `json:"onDemandPricing"`
	} `json:"spec"`
	Status struct {
		SpotPricing struct {
			HammerPricePerHour string `json:"hammerPricePerHour"`
			MarketPricePerHour string `json:"marketPricePerHour"`
		} `json:"spotPricing"`
	} `json:"status"`
}

func (s serverClassObject) toModel() ServerClassInfo {
	return ServerClassInfo{
		Name:            s.Metadata.Name,
		DisplayName:     s.Spec.DisplayName,
		Category:        s.Spec.Category,
		FlavorType:      s.Spec.FlavorType,
		CPU:             s.Spec.Resources.CPU,
		Memory:          s.Spec.Resources.Memory,
		Region:          s.Spec.Region,
		Availability:    s.Spec.Availability,
		OnDemandCost:    s.Spec.OnDemandPricing.Cost,
		SpotHammerPrice: s.Status.SpotPricing.HammerPricePerHour,
		SpotMarketPrice: s.Status.SpotPricing.MarketPricePerHour,
	}
}

type cloudspaceSpec struct {
	Region            string `json:"region"`
	KubernetesVersion string `json:"kubernetesVersion"`
	CNI               string `json:"cni,omitempty"`
	HAControlPlane    bool   `json:"HAControlPlane"`
	Cloud             string `json:"cloud,omitempty"`
	Webhook           string `json:"webhook,omitempty"`
}

type cloudspaceStatus struct {
	APIServerEndpoint        string `json:"APIServerEndpoint"`
	Phase                    string `json:"phase"`
	Health                   string `json:"health"`
	CurrentKubernetesVersion string `json:"currentKubernetesVersion"`
	FirstReadyTimestamp      string `json:"firstReadyTimestamp"`
}

type cloudspaceObject struct {
	APIVersion string           `json:"apiVersion,omitempty"`
	Kind       string           `json:"kind,omitempty"`
	Metadata   objectMeta       `json:"metadata"`
	Spec       cloudspaceSpec   `json:"spec"`
	Status     cloudspaceStatus `json:"status,omitempty"`
}

func (c cloudspaceObject) toModel() Cloudspace {
	cs := Cloudspace{
		Name:                     c.Metadata.Name,
		Namespace:                c.Metadata.Namespace,
		Region:                   c.Spec.Region,
		KubernetesVersion:        c.Spec.KubernetesVersion,
		Webhook:                  c.Spec.Webhook,
		CNI:                      c.Spec.CNI,
		HAControlPlane:           c.Spec.HAControlPlane,
		Cloud:                    c.Spec.Cloud,
		APIServerEndpoint:        c.Status.APIServerEndpoint,
		Phase:                    c.Status.Phase,
		Health:                   c.Status.Health,
		CurrentKubernetesVersion: c.Status.CurrentKubernetesVersion,
	}
	if cs.CNI == "" {
		cs.CNI = CNICalico
	}
	if cs.Cloud == "" {
		cs.Cloud = DefaultCloud
	}
	if c.Status.FirstReadyTimestamp != "" {
		// Malformed timestamps are ignored; the field stays zero.
		if ts, err := time.Parse(time.RFC3339, c.Status.FirstReadyTimestamp); err == nil {
			cs.FirstReadyTimestamp = ts
		}
	}
	return cs
}

func cloudspaceToWire(cs *Cloudspace) cloudspaceObject {
	return cloudspaceObject{
		APIVersion: apiVersion,
		Kind:       kindCloudspace,
		Metadata:   objectMeta{Name: cs.Name, Namespace: cs.Namespace},
		Spec: cloudspaceSpec{
			Region:            cs.Region,
			KubernetesVersion: cs.KubernetesVersion,
			CNI:               cs.CNI,
			HAControlPlane:    cs.HAControlPlane,
			Cloud:             cs.Cloud,
			Webhook:           cs.Webhook,
		},
	}
}

type autoscalingSpec struct {
	Enabled  bool `json:"enabled"`
	MinNodes int  `json:"minNodes,omitempty"`
	MaxNodes int  `json:"maxNodes,omitempty"`
}

type spotPoolSpec struct {
	CloudSpace  string          `json:"cloudSpace"`
	ServerClass string          `json:"serverClass"`
	Desired     int             `json:"desired"`
	BidPrice    string          `json:"bidPrice"`
	Autoscaling autoscalingSpec `json:"autoscaling"`
}

type spotPoolObject struct {
	APIVersion string       `json:"apiVersion,omitempty"`
	Kind       string       `json:"kind,omitempty"`
	Metadata   objectMeta   `json:"metadata"`
	Spec       spotPoolSpec `json:"spec"`
	Status     struct {
		BidStatus string `json:"bidStatus"`
		WonCount  int    `json:"wonCount"`
	} `json:"status,omitempty"`
}

func (p spotPoolObject) toModel() SpotNodePool {
	return SpotNodePool{
		Name:        p.Metadata.Name,
		Namespace:   p.Metadata.Namespace,
		Cloudspace:  p.Spec.CloudSpace,
		ServerClass: p.Spec.ServerClass,
		Desired:     p.Spec.Desired,
		BidPrice:    p.Spec.BidPrice,
		Autoscaling: Autoscaling{
			Enabled:  p.Spec.Autoscaling.Enabled,
			MinNodes: p.Spec.Autoscaling.MinNodes,
			MaxNodes: p.Spec.Autoscaling.MaxNodes,
		},
		BidStatus: p.Status.BidStatus,
		WonCount:  p.Status.WonCount,
	}
}

func spotPoolToWire(pool *SpotNodePool) spotPoolObject {
	obj := spotPoolObject{
		APIVersion: apiVersion,
		Kind:       kindSpotPool,
		Metadata:   objectMeta{Name: pool.Name, Namespace: pool.Namespace},
		Spec: spotPoolSpec{
			CloudSpace:  pool.Cloudspace,
			ServerClass: pool.ServerClass,
			Desired:     pool.Desired,
			BidPrice:    pool.BidPrice,
			Autoscaling: autoscalingSpec{Enabled: pool.Autoscaling.Enabled},
		},
	}
	if pool.Autoscaling.Enabled {
		obj.Spec.Autoscaling.MinNodes = pool.Autoscaling.MinNodes
		obj.Spec.Autoscaling.MaxNodes = pool.Autoscaling.MaxNodes
	}
	return obj
}

type onDemandPoolSpec struct {
	CloudSpace  string `json:"cloudSpace"`
	ServerClass string `json:"serverClass"`
	Desired     int    `json:"desired"`
}

type onDemandPoolObject struct {
	APIVersion string           `json:"apiVersion,omitempty"`
	Kind       string           `json:"kind,omitempty"`
	Metadata   objectMeta       `json:"metadata"`
	Spec       onDemandPoolSpec `json:"spec"`
	Status     struct {
		ReservedCount  int    `json:"reservedCount"`
		ReservedStatus string `json:"reservedStatus"`
	} `json:"status,omitempty"`
}

func (p onDemandPoolObject) toModel() OnDemandNodePool {
	return OnDemandNodePool{
		Name:           p.Metadata.Name,
		Namespace:      p.Metadata.Namespace,
		Cloudspace:     p.Spec.CloudSpace,
		ServerClass:    p.Spec.ServerClass,
		Desired:        p.Spec.Desired,
		ReservedCount:  p.Status.ReservedCount,
		ReservedStatus: p.Status.ReservedStatus,
	}
}

func onDemandPoolToWire(pool *OnDemandNodePool) onDemandPoolObject {
	return onDemandPoolObject{
		APIVersion: apiVersion,
		Kind:       kindOnDemandPool,
		Metadata:   objectMeta{Name: pool.Name, Namespace: pool.Namespace},
		Spec: onDemandPoolSpec{
			CloudSpace:  pool.Cloudspace,
			ServerClass: pool.ServerClass,
			Desired:     pool.Desired,
		},
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

type priceHistoryResponse struct {
	Auction string       `json:"auction"`
	History []PricePoint `json:"history"`
}
