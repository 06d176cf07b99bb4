package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/logger"
	"github.com/soochol/awsblogs/internal/metrics"
)

// ErrUnknownTool is returned by Execute for unregistered names.
var ErrUnknownTool = errors.New("unknown tool")

// Registry holds the tools exposed by every transport.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	log   *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		tools: make(map[string]Tool),
		log:   log,
	}
}

// Register adds a tool, replacing any tool with the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Execute runs the named tool with a per-invocation logger in ctx.
func (r *Registry) Execute(ctx context.Context, name string, input any) (any, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	// A request-scoped logger from the transport takes precedence.
	log := logger.FromContextOr(ctx, r.log).With(zap.String("tool", name), zap.String("invocation_id", uuid.NewString()))
	ctx = logger.ContextWithLogger(ctx, log)

	start := time.Now()
	log.Debug("tool invoked", zap.Any("input", input))
	result, err := t.Execute(ctx, input)
	metrics.CountTool(name, err)
	if err != nil {
		log.Warn("tool failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}
	log.Info("tool completed", zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// List returns all tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// ToolInfo describes a tool for listings.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// AllTools returns descriptions of all tools sorted by name.
func (r *Registry) AllTools() []ToolInfo {
	list := r.List()
	result := make([]ToolInfo, 0, len(list))
	for _, t := range list {
		result = append(result, ToolInfo{Name: t.Name(), Description: t.Description(), InputSchema: t.InputSchema()})
	}
	return result
}
