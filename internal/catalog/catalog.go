// Package catalog holds the fixed registry of marketplace agents.
package catalog

import "errors"

// ErrAgentNotFound is returned when an agent id is not registered.
var ErrAgentNotFound = errors.New("agent not found")

// ModelType discriminates which mock transformation and latency range apply
// to an agent.
type ModelType string

const (
	ModelSummarization ModelType = "summarization"
	ModelSentiment     ModelType = "sentiment"
	ModelImageCaption  ModelType = "image_caption"
	ModelOther         ModelType = "other"
)

// Agent describes one mock AI capability in the marketplace.
type Agent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	Description string    `json:"description"`
	ModelType   ModelType `json:"model_type"`
}

// Registry is a read-only agent catalog, fixed at construction and safe for
// unlimited concurrent reads.
type Registry struct {
	agents map[string]Agent
	order  []string
}

// NewRegistry builds a registry from the given agents, preserving insertion
// order for List.
func NewRegistry(agents ...Agent) *Registry {
	r := &Registry{
		agents: make(map[string]Agent, len(agents)),
		order:  make([]string, 0, len(agents)),
	}
	for _, a := range agents {
		if _, exists := r.agents[a.ID]; !exists {
			r.order = append(r.order, a.ID)
		}
		r.agents[a.ID] = a
	}
	return r
}

// Default returns the registry of built-in demo agents.
func Default() *Registry {
	return NewRegistry(
		Agent{
			ID:          "1",
			Name:        "Text Summarizer Pro",
			Category:    "Text Processing",
			Language:    "Python",
			Description: "Advanced text summarization using BART-Large-CNN",
			ModelType:   ModelSummarization,
		},
		Agent{
			ID:          "2",
			Name:        "Sentiment Analyzer",
			Category:    "Text Processing",
			Language:    "Python",
			Description: "Real-time sentiment analysis",
			ModelType:   ModelSentiment,
		},
		Agent{
			ID:          "3",
			Name:        "Image Caption Generator",
			Category:    "Image Analysis",
			Language:    "Python",
			Description: "Generate captions for images",
			ModelType:   ModelImageCaption,
		},
	)
}

// Lookup returns the agent registered under id, or ErrAgentNotFound.
func (r *Registry) Lookup(id string) (Agent, error) {
	agent, ok := r.agents[id]
	if !ok {
		return Agent{}, ErrAgentNotFound
	}
	return agent, nil
}

// List returns all registered agents in insertion order.
func (r *Registry) List() []Agent {
	list := make([]Agent, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.agents[id])
	}
	return list
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return len(r.agents)
}
