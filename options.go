package pngyinx

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	limits         Limits
	rejectCritical bool
}

type WriteOption func(*writeConfig)

// WithWriteLimits sets the limits used when parsing the input of Encode and Remove.
// The same MaxChunkLen also bounds the message Encode accepts.
func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithRejectCritical makes Encode refuse a critical chunk type (uppercase first
// letter). Standard decoders reject images carrying critical chunks they do not
// know, so such a file no longer displays.
func WithRejectCritical(v bool) WriteOption {
	return func(c *writeConfig) { c.rejectCritical = v }
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

func newWriteConfig(opts []WriteOption) writeConfig {
	cfg := writeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}
