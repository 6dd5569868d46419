// ABOUTME: Settings namespaces and the fixed keys read from each of them
// ABOUTME: Key strings match the names used by the platform settings provider

package settings

import "fmt"

// Namespace is one of the fixed partitions of the settings store.
type Namespace string

const (
	Global Namespace = "global"
	Secure Namespace = "secure"
	System Namespace = "system"
)

// Namespaces returns every namespace in lookup order.
func Namespaces() []Namespace {
	return []Namespace{Global, Secure, System}
}

// ParseNamespace converts a namespace name into a Namespace.
func ParseNamespace(s string) (Namespace, error) {
	switch ns := Namespace(s); ns {
	case Global, Secure, System:
		return ns, nil
	default:
		return "", fmt.Errorf("unknown namespace %q (want global, secure or system)", s)
	}
}

func (n Namespace) String() string {
	return string(n)
}

// Key identifies a setting within its namespace.
type Key string

// Global namespace keys
const (
	KeyADBEnabled                 Key = "adb_enabled"
	KeyDevelopmentSettingsEnabled Key = "development_settings_enabled"
	KeyHTTPProxy                  Key = "http_proxy"
	KeyTransitionAnimationScale   Key = "transition_animation_scale"
	KeyWindowAnimationScale       Key = "window_animation_scale"
	KeyDataRoaming                Key = "data_roaming"
)

// Secure namespace keys
const (
	KeyAccessibilityEnabled    Key = "accessibility_enabled"
	KeyDefaultInputMethod      Key = "default_input_method"
	KeyRTTCallingMode          Key = "rtt_calling_mode"
	KeyTouchExplorationEnabled Key = "touch_exploration_enabled"
)

// System namespace keys
const (
	KeyAlarmAlert        Key = "alarm_alert"
	KeyDateFormat        Key = "date_format"
	KeyEndButtonBehavior Key = "end_button_behavior"
	KeyFontScale         Key = "font_scale"
	KeyScreenOffTimeout  Key = "screen_off_timeout"
	KeyTextAutoReplace   Key = "auto_replace"
	KeyTextAutoPunctuate Key = "auto_punctuate"
	KeyTime12Or24        Key = "time_12_24"
)

// APILevelP is the first platform API level that stores rtt_calling_mode.
const APILevelP = 28
