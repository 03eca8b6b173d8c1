package plugin

import (
	"context"
	"fmt"
	"strings"
)

// Register appends p. An empty or already taken name leaves the registry
// unchanged and returns *Error.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return &Error{Op: OpRegister, Err: ErrNilPlugin}
	}

	d, err := describe(p)
	if err != nil {
		return &Error{Op: OpRegister, Err: err}
	}
	name := d.Name
	key := normalizeName(name)
	if key == "" {
		return &Error{Plugin: name, Op: OpRegister, Err: ErrEmptyName}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.taken[key]; ok {
		return &Error{Plugin: name, Op: OpRegister, Err: ErrDuplicatePlugin}
	}

	r.entries = append(r.entries, entry{name: name, plugin: p})
	r.taken[key] = struct{}{}
	r.l.Debugf(context.Background(), "%s: registered plugin %q", LogPrefixRegister, name)
	return nil
}

// Route dispatches input to the first plugin whose CanHandle returns true.
// A failing plugin is reported on the result; the next plugin is not tried.
func (r *Registry) Route(ctx context.Context, input string, ec ExecContext) RouteResult {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	for _, e := range entries {
		name, p := e.name, e.plugin

		ok, err := canHandle(p, input)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", LogPrefixRoute, err)
			return RouteResult{Plugin: name, Handled: true, Err: &Error{Plugin: name, Op: OpCanHandle, Err: err}}
		}
		if !ok {
			continue
		}

		r.l.Debugf(ctx, "%s: routing to plugin %q", LogPrefixRoute, name)
		resp, err := execute(ctx, p, input, ec)
		if err != nil {
			r.l.Errorf(ctx, "%s: plugin %q failed: %v", LogPrefixRoute, name, err)
			return RouteResult{Plugin: name, Handled: true, Err: &Error{Plugin: name, Op: OpExecute, Err: err}}
		}
		return RouteResult{Plugin: name, Response: resp, Handled: true}
	}

	return RouteResult{}
}

// Descriptors returns the descriptors of all plugins in registration order.
// Commands are filled from Commander when the descriptor has none. A plugin
// that panics while describing itself is listed by its registered name only.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		d, err := describe(e.plugin)
		if err != nil {
			r.l.Errorf(context.Background(), "%s: plugin %q: %v", LogPrefixDescribe, e.name, err)
			d = Descriptor{Name: e.name}
		}
		d.Name = e.name
		out = append(out, d)
	}
	return out
}

// Names returns plugin names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func describe(p Plugin) (d Descriptor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	d = p.Descriptor()
	if len(d.Commands) == 0 {
		if c, ok := p.(Commander); ok {
			d.Commands = c.Commands()
		}
	}
	return d, nil
}

func canHandle(p Plugin, input string) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	return p.CanHandle(input), nil
}

func execute(ctx context.Context, p Plugin, input string, ec ExecContext) (resp string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	return p.Execute(ctx, input, ec)
}
