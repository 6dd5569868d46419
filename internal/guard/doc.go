// Package guard runs an operation and substitutes a fallback value when it fails.
//
// Every helper in this package invokes its operation exactly once, synchronously, and never
// returns an error or lets a panic escape. All failure kinds are treated the same way: the
// fallback is returned and the failure is dropped without logging.
//
//	value := guard.Execute(func() (string, error) {
//	    return provider.GetString(settings.Secure, settings.KeyDefaultInputMethod)
//	}, "")
package guard
