package runner

import "maps"

// config holds the configuration for command execution.
// Global settings are set at creation time; local settings apply to the
// next Run only and override the global ones.
type config struct {
	// Global settings
	globalEnv           map[string]string
	globalDir           string
	globalInheritEnv    bool
	globalDisableColors bool
	globalPassthrough   bool
	globalAllowNonZero  bool
	globalRedact        []string
	globalObserver      LineObserver

	// Local settings
	localEnv           map[string]string
	localDir           string
	localInheritEnv    *bool
	localDisableColors *bool
	localPassthrough   *bool
	localAllowNonZero  *bool
	localRedact        []string
	localObserver      LineObserver
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := &config{
		globalEnv:           maps.Clone(c.globalEnv),
		globalDir:           c.globalDir,
		globalInheritEnv:    c.globalInheritEnv,
		globalDisableColors: c.globalDisableColors,
		globalPassthrough:   c.globalPassthrough,
		globalAllowNonZero:  c.globalAllowNonZero,
		globalRedact:        append([]string(nil), c.globalRedact...),
		globalObserver:      c.globalObserver,
		localEnv:            maps.Clone(c.localEnv),
		localDir:            c.localDir,
		localInheritEnv:     cloneBool(c.localInheritEnv),
		localDisableColors:  cloneBool(c.localDisableColors),
		localPassthrough:    cloneBool(c.localPassthrough),
		localAllowNonZero:   cloneBool(c.localAllowNonZero),
		localRedact:         append([]string(nil), c.localRedact...),
		localObserver:       c.localObserver,
	}
	return clone
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func pick(local *bool, global bool) bool {
	if local != nil {
		return *local
	}
	return global
}

// effectiveEnv merges global and local environment variables.
// Local settings override global settings.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	maps.Copy(env, c.globalEnv)
	maps.Copy(env, c.localEnv)

	if c.effectiveDisableColors() {
		env["NO_COLOR"] = "1"
		env["TERM"] = "dumb"
		env["CLICOLOR"] = "0"
		env["CLICOLOR_FORCE"] = "0"
		env["FORCE_COLOR"] = "0"
	}

	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	return pick(c.localInheritEnv, c.globalInheritEnv)
}

func (c *config) effectiveDisableColors() bool {
	return pick(c.localDisableColors, c.globalDisableColors)
}

func (c *config) effectivePassthrough() bool {
	return pick(c.localPassthrough, c.globalPassthrough)
}

func (c *config) effectiveAllowNonZero() bool {
	return pick(c.localAllowNonZero, c.globalAllowNonZero)
}

// effectiveRedact returns global secrets followed by local ones.
// Secrets are additive: a local setting never removes a global secret.
func (c *config) effectiveRedact() []string {
	out := make([]string, 0, len(c.globalRedact)+len(c.localRedact))
	out = append(out, c.globalRedact...)
	return append(out, c.localRedact...)
}

func (c *config) effectiveObserver() LineObserver {
	if c.localObserver != nil {
		return c.localObserver
	}
	return c.globalObserver
}

// resetLocal clears all local settings after a Run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localDisableColors = nil
	c.localPassthrough = nil
	c.localAllowNonZero = nil
	c.localRedact = nil
	c.localObserver = nil
}
