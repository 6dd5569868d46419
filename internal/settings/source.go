// ABOUTME: Settings extraction layer exposing one accessor per tracked device signal
// ABOUTME: Every accessor wraps a single provider read in guard.Execute with an empty fallback

package settings

import "github.com/2389/devsignals/internal/guard"

// Provider reads raw values from the settings store. A missing key is
// reported as an error; a nil error with an empty value is a real blank.
type Provider interface {
	GetString(ns Namespace, key Key) (string, error)
}

// Capability reports whether the host platform supports settings introduced
// at the given API level.
type Capability func(minAPILevel int) bool

// AtLeast builds a Capability from a platform version query. The query runs
// on every check; a panicking query counts as unsupported.
func AtLeast(version func() int) Capability {
	return func(minAPILevel int) bool {
		return guard.Call(version, 0) >= minAPILevel
	}
}

// DataSource exposes every tracked signal. Accessors never fail: an
// unreadable value is returned as "".
type DataSource interface {
	// Global
	ADBEnabled() string
	DevelopmentSettingsEnabled() string
	HTTPProxy() string
	TransitionAnimationScale() string
	WindowAnimationScale() string
	DataRoamingEnabled() string

	// Secure
	AccessibilityEnabled() string
	DefaultInputMethod() string
	RTTCallingMode() string
	TouchExplorationEnabled() string

	// System
	AlarmAlertPath() string
	DateFormat() string
	EndButtonBehaviour() string
	FontScale() string
	ScreenOffTimeout() string
	TextAutoReplaceEnable() string
	TextAutoPunctuate() string
	Time12Or24() string
}

// Source implements DataSource on top of a Provider. It holds no mutable
// state and is safe for concurrent use when the provider is.
type Source struct {
	provider   Provider
	capability Capability
}

var _ DataSource = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithCapability sets the predicate used to gate version-dependent signals.
func WithCapability(c Capability) Option {
	return func(s *Source) {
		if c != nil {
			s.capability = c
		}
	}
}

// WithPlatformVersion gates version-dependent signals on the given API level query.
func WithPlatformVersion(version func() int) Option {
	return WithCapability(AtLeast(version))
}

// New creates a Source reading from p. Without a capability option every
// signal is treated as supported.
func New(p Provider, opts ...Option) *Source {
	s := &Source{
		provider:   p,
		capability: func(int) bool { return true },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) ADBEnabled() string {
	return s.global(KeyADBEnabled)
}

func (s *Source) DevelopmentSettingsEnabled() string {
	return s.global(KeyDevelopmentSettingsEnabled)
}

func (s *Source) HTTPProxy() string {
	return s.global(KeyHTTPProxy)
}

func (s *Source) TransitionAnimationScale() string {
	return s.global(KeyTransitionAnimationScale)
}

func (s *Source) WindowAnimationScale() string {
	return s.global(KeyWindowAnimationScale)
}

func (s *Source) DataRoamingEnabled() string {
	return s.global(KeyDataRoaming)
}

func (s *Source) AccessibilityEnabled() string {
	return s.secure(KeyAccessibilityEnabled)
}

func (s *Source) DefaultInputMethod() string {
	return s.secure(KeyDefaultInputMethod)
}

// RTTCallingMode returns "" without querying the provider on platforms
// older than APILevelP.
func (s *Source) RTTCallingMode() string {
	if !s.supports(APILevelP) {
		return ""
	}
	return s.secure(KeyRTTCallingMode)
}

func (s *Source) TouchExplorationEnabled() string {
	return s.secure(KeyTouchExplorationEnabled)
}

func (s *Source) AlarmAlertPath() string {
	return s.system(KeyAlarmAlert)
}

func (s *Source) DateFormat() string {
	return s.system(KeyDateFormat)
}

func (s *Source) EndButtonBehaviour() string {
	return s.system(KeyEndButtonBehavior)
}

func (s *Source) FontScale() string {
	return s.system(KeyFontScale)
}

func (s *Source) ScreenOffTimeout() string {
	return s.system(KeyScreenOffTimeout)
}

func (s *Source) TextAutoReplaceEnable() string {
	return s.system(KeyTextAutoReplace)
}

func (s *Source) TextAutoPunctuate() string {
	return s.system(KeyTextAutoPunctuate)
}

func (s *Source) Time12Or24() string {
	return s.system(KeyTime12Or24)
}

func (s *Source) global(key Key) string {
	return s.lookup(Global, key)
}

func (s *Source) secure(key Key) string {
	return s.lookup(Secure, key)
}

func (s *Source) system(key Key) string {
	return s.lookup(System, key)
}

func (s *Source) lookup(ns Namespace, key Key) string {
	return guard.Execute(func() (string, error) {
		return s.provider.GetString(ns, key)
	}, "")
}

func (s *Source) supports(minAPILevel int) bool {
	return guard.Call(func() bool {
		return s.capability(minAPILevel)
	}, false)
}
