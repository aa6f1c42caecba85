// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NodeType distinguishes the synthetic identity root from account nodes.
type NodeType string

const (
	NodeIdentity NodeType = "identity"
	NodeAccount  NodeType = "account"
)

// IdentityRootID is the fixed node ID of the identity root. Exactly one node
// carries it per graph.
const IdentityRootID = "identity-root"

// Category buckets a platform into a semantic group for display and stats.
type Category string

const (
	CategorySocial       Category = "social"
	CategoryProfessional Category = "professional"
	CategoryMedia        Category = "media"
	CategoryGaming       Category = "gaming"
	CategoryForum        Category = "forum"
	CategoryEcommerce    Category = "ecommerce"
	CategoryMessaging    Category = "messaging"
	CategoryOther        Category = "other"
)

// EdgeReason names why two nodes are connected. ReasonIdentitySearch is
// reserved for edges touching the identity root; every other reason connects
// two account nodes. ReasonSharedID is part of the taxonomy for producers
// that carry a cross-provider stable account ID; the builder itself does not
// emit it.
type EdgeReason string

const (
	ReasonSameUsername    EdgeReason = "same_username"
	ReasonSimilarUsername EdgeReason = "similar_username"
	ReasonSameImage       EdgeReason = "same_image"
	ReasonSimilarBio      EdgeReason = "similar_bio"
	ReasonSharedDomain    EdgeReason = "shared_domain"
	ReasonSharedLink      EdgeReason = "shared_link"
	ReasonSharedEmail     EdgeReason = "shared_email"
	ReasonSharedID        EdgeReason = "shared_id"
	ReasonCrossReference  EdgeReason = "cross_reference"
	ReasonIdentitySearch  EdgeReason = "identity_search"
)

// GraphNode is one vertex of the correlation graph. Layout, colors, and
// icons are the rendering caller's concern; the node carries only logical
// structure and display metadata.
type GraphNode struct {
	ID       string   `json:"id" yaml:"id"`
	Type     NodeType `json:"type" yaml:"type"`
	Label    string   `json:"label" yaml:"label"`
	Platform string   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`

	// Confidence is 0-100; for account nodes it is the profile score, for
	// the identity root it is fixed at 100.
	Confidence int `json:"confidence" yaml:"confidence"`

	AvatarURL  string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	BioSnippet string `json:"bio_snippet,omitempty" yaml:"bio_snippet,omitempty"`

	// Verification is an externally supplied status; the builder leaves it
	// empty.
	Verification string `json:"verification,omitempty" yaml:"verification,omitempty"`
}

// GraphEdge is one correlation claim between two nodes. Edges are undirected
// in effect; Source/Target order is canonical (lexicographic by node ID for
// account pairs, root first for identity edges) so the edge set is
// deterministic regardless of construction order.
type GraphEdge struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	Reason EdgeReason `json:"reason" yaml:"reason"`

	// Confidence is 0-1.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Weight is a rendering thickness hint derived from Confidence.
	Weight float64 `json:"weight" yaml:"weight"`

	// Detail is an optional human-readable explanation.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// GraphStats summarizes a built graph.
type GraphStats struct {
	TotalNodes       int `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges       int `json:"total_edges" yaml:"total_edges"`
	IdentityEdges    int `json:"identity_edges" yaml:"identity_edges"`
	CorrelationEdges int `json:"correlation_edges" yaml:"correlation_edges"`

	ByReason   map[EdgeReason]int `json:"by_reason" yaml:"by_reason"`
	ByCategory map[Category]int   `json:"by_category" yaml:"by_category"`
}

// CorrelationGraphData is the complete correlation graph for one identity.
type CorrelationGraphData struct {
	Nodes []GraphNode `json:"nodes" yaml:"nodes"`
	Edges []GraphEdge `json:"edges" yaml:"edges"`
	Stats GraphStats  `json:"stats" yaml:"stats"`
}

// EdgesTouching returns every edge with nodeID as either endpoint. An edge
// between A and B is surfaced exactly once for each of A and B.
func (g CorrelationGraphData) EdgesTouching(nodeID string) []GraphEdge {
	var edges []GraphEdge
	for _, e := range g.Edges {
		if e.Source == nodeID || e.Target == nodeID {
			edges = append(edges, e)
		}
	}
	return edges
}

// Node returns the node with the given ID, if present.
func (g CorrelationGraphData) Node(id string) (GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return GraphNode{}, false
}
