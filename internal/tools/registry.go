// Package tools exposes the service operations as named tools with
// JSON parameter payloads. Registration is gated by the permission set
// resolved at startup, so a readonly deployment never even registers
// the mutating tools.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Handler executes one tool call. params is the raw JSON parameter
// object supplied by the caller; an empty payload is passed as nil.
type Handler func(ctx context.Context, params json.RawMessage) (any, error)

// Info describes a registered tool.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnknownToolError is returned by Call for a name that was never
// registered, including tools disabled by the permission set.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

type registration struct {
	info    Info
	handler Handler
}

// Registry holds the registered tools. Registration happens once at
// startup; Call is safe for concurrent use afterwards.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]registration
	logger *zap.Logger
}

// NewRegistry creates an empty tool registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		byName: make(map[string]registration),
		logger: logger,
	}
}

// Register adds a tool under a unique name. Registering the same name
// twice is a wiring bug and panics.
func (r *Registry) Register(name, description string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("tools: duplicate registration of %q", name))
	}
	r.byName[name] = registration{
		info:    Info{Name: name, Description: description},
		handler: handler,
	}
	r.order = append(r.order, name)
	r.logger.Debug("tool registered", zap.String("tool", name))
}

// Call dispatches one tool invocation.
func (r *Registry) Call(ctx context.Context, name string, params json.RawMessage) (any, error) {
	r.mu.RLock()
	reg, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	r.logger.Info("tool call", zap.String("tool", name))
	result, err := reg.handler(ctx, params)
	if err != nil {
		r.logger.Error("tool call failed", zap.String("tool", name), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.byName[name].info)
	}
	return infos
}

// decodeParams unmarshals a tool parameter payload into dst. A missing
// or empty payload leaves dst at its zero value so tools with all-
// optional parameters work without a body.
func decodeParams(params json.RawMessage, dst any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return &InvalidParamsError{Reason: err.Error()}
	}
	return nil
}
