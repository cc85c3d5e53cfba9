package classify

// Config controls which matchers run and how results are judged.
// The zero value is usable; NewConfig returns one ready for mutation
// during setup. After a Classifier is constructed the config is not
// consulted again, so a config must not be mutated mid-run.
type Config struct {
	disabled      map[string]bool
	floor         int // 0 means "use the catalog floor"
	failOnUnknown bool
}

// NewConfig creates an empty configuration.
func NewConfig() *Config {
	return &Config{
		disabled: make(map[string]bool),
	}
}

// Disable turns off the matcher for the given feature id.
func (c *Config) Disable(id string) {
	if c.disabled == nil {
		c.disabled = make(map[string]bool)
	}
	c.disabled[id] = true
}

// IsDisabled reports whether the matcher for id is disabled.
func (c *Config) IsDisabled(id string) bool {
	return c.disabled[id]
}

// DisabledIDs returns the disabled feature ids, unordered.
func (c *Config) DisabledIDs() []string {
	ids := make([]string, 0, len(c.disabled))
	for id := range c.disabled {
		ids = append(ids, id)
	}
	return ids
}

// SetFloor sets the configured floor standard: the ordinal reported when an
// input matches no cataloged feature, and the acceptance threshold for the
// batch exit signal.
func (c *Config) SetFloor(std int) {
	c.floor = std
}

// Floor returns the configured floor, or 0 when the catalog default
// should apply.
func (c *Config) Floor() int {
	return c.floor
}

// SetFailOnUnknown makes configuration references to unknown feature ids an
// error instead of being ignored.
func (c *Config) SetFailOnUnknown(fail bool) {
	c.failOnUnknown = fail
}

// FailOnUnknown reports the unknown-id policy.
func (c *Config) FailOnUnknown() bool {
	return c.failOnUnknown
}
