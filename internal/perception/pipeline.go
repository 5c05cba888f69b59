package perception

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Resolver orchestrates the full pipeline: Normalize -> upstream Generate ->
// ParseCall -> CanonicalName -> Reconcile.
//
// A Resolver holds no mutable state between calls; concurrent Resolve calls
// for independent inputs need no locking.
type Resolver struct {
	upstream Upstream
	policy   Policy
	log      *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPolicy overrides the default disambiguation policy.
func WithPolicy(policy Policy) Option {
	return func(r *Resolver) { r.policy = policy }
}

// WithLogger attaches a logger. The pipeline logs at debug level only.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a resolver. A nil upstream is allowed and skips the
// model entirely, resolving from keyword evidence alone.
func NewResolver(upstream Upstream, opts ...Option) *Resolver {
	r := &Resolver{
		upstream: upstream,
		policy:   DefaultPolicy(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a raw user command to a final call. ok=false means the
// upstream output contained no recognizable function call; that is a normal
// outcome the caller must handle, not an error. Executing the call (and
// validating set_counter's number) is entirely the caller's responsibility.
//
// When the upstream transport fails, Resolve falls back to a pure
// keyword-evidence parse of the normalized text, so an unreachable model
// degrades to offline behavior instead of a hard failure.
func (r *Resolver) Resolve(ctx context.Context, input string) (Call, bool, error) {
	normalized := Normalize(input)
	r.log.Debug("normalized input",
		zap.String("raw", input),
		zap.String("normalized", normalized))

	if r.upstream == nil {
		call, ok := HeuristicResolve(normalized, r.policy)
		return call, ok, nil
	}

	raw, err := r.upstream.Generate(ctx, BuildPrompt(normalized, CounterOperations), CounterOperations)
	if err != nil {
		r.log.Warn("upstream failed, using heuristic fallback", zap.Error(err))
		if call, ok := HeuristicResolve(normalized, r.policy); ok {
			return call, true, nil
		}
		return Call{}, false, err
	}
	r.log.Debug("upstream output", zap.String("raw", raw))

	parsed, ok := ParseCall(raw)
	if !ok {
		return Call{}, false, nil
	}

	parsed.Name = CanonicalName(parsed.Name)
	final := Reconcile(parsed, normalized, r.policy)
	r.log.Debug("reconciled call",
		zap.String("parsed", parsed.Name),
		zap.String("final", final.Name))
	return final, true, nil
}

// HeuristicResolve derives a call from keyword evidence alone, with the same
// precedence the correction pass uses: explicit zero plus reset evidence,
// then an explicit set pattern, then a single unambiguous keyword signal.
// ok=false when evidence is mixed or absent.
func HeuristicResolve(normalized string, policy Policy) (Call, bool) {
	ev := GatherEvidence(normalized)
	lower := strings.ToLower(normalized)

	switch {
	case zeroTarget.MatchString(lower) && ev.Reset:
		return Call{Name: OpReset, Args: map[string]string{}}, true
	case ev.SetPattern:
		number := extractNumber(lower)
		if number == "" {
			return Call{}, false
		}
		call := Reconcile(Call{Name: OpSet, Args: map[string]string{ArgNumber: number}}, normalized, policy)
		return call, true
	case ev.signals() == 1:
		switch {
		case ev.Increment:
			return Call{Name: OpIncrement, Args: map[string]string{}}, true
		case ev.Decrement:
			return Call{Name: OpDecrement, Args: map[string]string{}}, true
		default:
			return Call{Name: OpReset, Args: map[string]string{}}, true
		}
	}
	return Call{}, false
}
