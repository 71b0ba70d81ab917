package tree

// Option configures a Normalize call via functional arguments, matching the
// configuration style used for solver options throughout this module.
type Option func(*normalizeOptions)

type normalizeOptions struct {
	output  AttrName
	levels  []int
	inPlace bool
}

// WithOutput sets the attribute Normalize writes its result into. Defaults
// to the key being normalized, so Normalize(t, AttrOptimalRatio) overwrites
// optimal_ratio with its own normalized value; passing WithOutput(AttrCurrentRatio)
// is how BuildTree derives current_ratio from current_value without
// clobbering the input field.
func WithOutput(name AttrName) Option {
	return func(o *normalizeOptions) { o.output = name }
}

// WithLevels restricts normalization to the given depths; nodes at other
// levels are left untouched. Omitted or empty means every level.
func WithLevels(levels ...int) Option {
	return func(o *normalizeOptions) { o.levels = levels }
}

// WithInPlace controls whether Normalize mutates t directly or first takes
// a Clone and mutates that, leaving t untouched (the default). Normalize
// always returns the Tree it actually wrote to, so functional callers use
// the returned pointer rather than t.
func WithInPlace(inPlace bool) Option {
	return func(o *normalizeOptions) { o.inPlace = inPlace }
}

func defaultNormalizeOptions(key AttrName) normalizeOptions {
	return normalizeOptions{output: key, inPlace: false}
}

// Normalize rescales key so that, within every group of siblings (nodes
// sharing a parent) plus the root on its own, the values sum to 1. A
// sibling group whose raw sum is zero writes 0 for every member rather
// than distributing evenly, since there is no meaningful ratio to derive
// from an all-zero denominator.
//
// Normalize writes the rescaled values into the attribute named by
// WithOutput (key itself by default). It normalizes a Clone of t and
// leaves t untouched unless WithInPlace(true) is given.
func Normalize(t *Tree, key AttrName, opts ...Option) (*Tree, error) {
	cfg := defaultNormalizeOptions(key)
	for _, opt := range opts {
		opt(&cfg)
	}

	target := t
	if !cfg.inPlace {
		target = t.Clone()
	}

	target.mu.Lock()
	defer target.mu.Unlock()

	levelFilter := func(int) bool { return true }
	if len(cfg.levels) > 0 {
		allowed := make(map[int]bool, len(cfg.levels))
		for _, l := range cfg.levels {
			allowed[l] = true
		}
		levelFilter = func(l int) bool { return allowed[l] }
	}

	// Group labels by parent; root is its own singleton group.
	groups := make(map[string][]string)
	for label, parents := range target.parentsOf {
		if len(parents) != 1 {
			continue
		}
		groups[parents[0]] = append(groups[parents[0]], label)
	}
	if target.root != "" {
		groups[""] = append(groups[""], target.root)
	}

	for _, siblings := range groups {
		sum := 0.0
		for _, label := range siblings {
			n := target.nodes[label]
			if !levelFilter(n.Level) {
				continue
			}
			v, _ := n.Attr(key)
			sum += v
		}

		for _, label := range siblings {
			node := target.nodes[label]
			if !levelFilter(node.Level) {
				continue
			}
			v, _ := node.Attr(key)

			var normalized float64
			if sum != 0 {
				normalized = v / sum
			}
			node.setAttr(cfg.output, normalized)
		}
	}

	return target, nil
}
