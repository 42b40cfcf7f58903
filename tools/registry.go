package tools

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gentools/pkg/llms"
	"github.com/effective-security/gentools/pkg/metricskey"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/gentools", "tools")

// Registry maps tool names to registered tools and produces the metadata
// advertised to the model. Registration is expected to be front-loaded
// during process start, but the Registry is safe for concurrent use if
// tools are added at runtime.
//
// A Registry is constructed explicitly and passed to whichever component
// registers or dispatches tools; there is no process-wide instance.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]ITool
	order  []string

	callback Callback
	cache    ResultCache
}

// ResultCache caches results of idempotent tool calls,
// keyed by tool name and raw arguments.
type ResultCache interface {
	Get(ctx context.Context, tool, args string) (string, bool)
	Set(ctx context.Context, tool, args, result string) error
}

type RegistryOption func(*Registry)

// WithCallback sets the callback notified around each dispatch.
func WithCallback(cb Callback) RegistryOption {
	return func(r *Registry) {
		r.callback = cb
	}
}

// WithResultCache enables result caching for idempotent tools.
func WithResultCache(cache ResultCache) RegistryOption {
	return func(r *Registry) {
		r.cache = cache
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byName: make(map[string]ITool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds the tool's name to the tool and returns the tool
// unchanged, so registrations compose. The last registration under a
// name wins; the slot keeps its original position so the enumeration
// order of metadata stays stable.
func (r *Registry) Register(t ITool) ITool {
	name := t.Name()

	r.mu.Lock()
	if _, ok := r.byName[name]; !ok {
		r.order = append(r.order, name)
	}
	r.byName[name] = t
	r.mu.Unlock()

	metricskey.StatsToolsRegistered.IncrCounter(1, name)
	logger.KV(xlog.DEBUG,
		"status", "tool_registered",
		"tool", name,
	)
	return t
}

// Lookup returns the tool registered under name,
// or ErrToolNotFound with the offending name.
func (r *Registry) Lookup(name string) (ITool, error) {
	r.mu.RLock()
	t := r.byName[name]
	r.mu.RUnlock()

	if t == nil {
		return nil, errors.WithMessagef(ErrToolNotFound, "%s", name)
	}
	return t, nil
}

// Len returns the number of distinct registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// List returns the registered tools in registration order.
func (r *Registry) List() []ITool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]ITool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.byName[name])
	}
	return list
}

// Tools returns the function-calling metadata for every registered tool,
// in registration order. Generation never fails: a tool with no
// parameters yields empty properties and required lists.
func (r *Registry) Tools() []llms.Tool {
	list := r.List()
	res := make([]llms.Tool, 0, len(list))
	for _, t := range list {
		res = append(res, llms.Tool{
			Type: llms.ToolType,
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return res
}

// Descriptions returns the name/description digest of all registered
// tools for embedding into a system prompt.
func (r *Registry) Descriptions() string {
	return GetDescriptions(r.List()...)
}
