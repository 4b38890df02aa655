// Package graph converts a merged company document into a node/edge
// knowledge graph with deterministic IDs.
package graph

import (
	"fmt"

	"github.com/corpgraph/corpgraph/internal/company"
)

// NodeType enumerates the graph entity kinds.
type NodeType string

const (
	NodeCompany    NodeType = "Company"
	NodeProduct    NodeType = "Product"
	NodePerson     NodeType = "Person"
	NodeLocation   NodeType = "Location"
	NodeTechnology NodeType = "Technology"
)

// EdgeType enumerates the relationship kinds.
type EdgeType string

const (
	EdgeHasProduct      EdgeType = "HAS_PRODUCT"
	EdgeHeadquarteredAt EdgeType = "HEADQUARTERED_AT"
	EdgeWorksAt         EdgeType = "WORKS_AT"
	EdgeUsesTech        EdgeType = "USES_TECH"
)

// Node is one graph entity.
type Node struct {
	ID    string            `json:"id"`
	Type  NodeType          `json:"type"`
	Label string            `json:"label"`
	Data  map[string]string `json:"data"`
}

// Edge connects two nodes. Direction encodes ownership: people point at
// the company, the company points at everything else.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Type EdgeType `json:"type"`
}

// Stats is the derived summary block.
type Stats struct {
	TotalNodes int              `json:"total_nodes"`
	TotalEdges int              `json:"total_edges"`
	NodeTypes  map[NodeType]int `json:"node_types"`
}

// Graph is the full assembled result.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats Stats  `json:"stats"`
}

// Generate assembles the graph for a company document. Total function:
// missing fields produce fewer nodes, never an error. A document with no
// company name falls back to the domain as the label.
func Generate(doc company.Document) Graph {
	var nodes []Node
	var edges []Edge

	companyID := Slugify(doc.Company.Domain)
	if companyID == "" {
		companyID = "company"
	}
	label := doc.Company.Name
	if label == "" {
		label = doc.Company.Domain
	}
	nodes = append(nodes, Node{
		ID:    companyID,
		Type:  NodeCompany,
		Label: label,
		Data: map[string]string{
			"domain":      doc.Company.Domain,
			"description": doc.Company.ShortDescription,
			"industry":    doc.Company.Industry,
		},
	})

	for idx, product := range doc.Products {
		if product.Name == "" {
			continue
		}
		id := fmt.Sprintf("product:%s-%d", Slugify(product.Name), idx)
		nodes = append(nodes, Node{
			ID:    id,
			Type:  NodeProduct,
			Label: product.Name,
			Data:  map[string]string{"description": product.Description},
		})
		edges = append(edges, Edge{From: companyID, To: id, Type: EdgeHasProduct})
	}

	if hq := doc.Locations.Headquarters; hq != "" {
		id := "location:" + Slugify(hq)
		nodes = append(nodes, Node{
			ID:    id,
			Type:  NodeLocation,
			Label: hq,
			Data:  map[string]string{"type": "Headquarters"},
		})
		edges = append(edges, Edge{From: companyID, To: id, Type: EdgeHeadquarteredAt})
	}

	for idx, person := range doc.People {
		// Placeholder people carry an empty name and stay off the graph.
		if person.Name == "" {
			continue
		}
		id := fmt.Sprintf("person:%s-%d", Slugify(person.Name), idx)
		nodes = append(nodes, Node{
			ID:    id,
			Type:  NodePerson,
			Label: person.Name,
			Data: map[string]string{
				"title":         person.Title,
				"role_category": string(person.Category),
			},
		})
		edges = append(edges, Edge{From: id, To: companyID, Type: EdgeWorksAt})
	}

	for idx, tech := range doc.TechStack {
		if tech == "" {
			continue
		}
		id := fmt.Sprintf("tech:%s-%d", Slugify(tech), idx)
		nodes = append(nodes, Node{
			ID:    id,
			Type:  NodeTechnology,
			Label: tech,
			Data:  map[string]string{},
		})
		edges = append(edges, Edge{From: companyID, To: id, Type: EdgeUsesTech})
	}

	return Graph{
		Nodes: nodes,
		Edges: edges,
		Stats: computeStats(nodes, edges),
	}
}

func computeStats(nodes []Node, edges []Edge) Stats {
	counts := map[NodeType]int{}
	for _, n := range nodes {
		counts[n.Type]++
	}
	return Stats{
		TotalNodes: len(nodes),
		TotalEdges: len(edges),
		NodeTypes:  counts,
	}
}
