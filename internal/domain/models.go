package domain

// Option is a selectable item. Value identifies it; Label is what the user sees.
type Option struct {
	Label string
	Value string
}

// FailurePolicy decides what happens when the options source cannot be read
type FailurePolicy string

const (
	// PolicyFallback replaces a failed load with the built-in option list
	PolicyFallback FailurePolicy = "fallback"
	// PolicyError surfaces the failure to the user
	PolicyError FailurePolicy = "error"
)

// Valid reports whether p is a known policy
func (p FailurePolicy) Valid() bool {
	return p == PolicyFallback || p == PolicyError
}

// OptionsFromStrings maps raw identifiers 1:1 into options
func OptionsFromStrings(values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Label: v, Value: v})
	}
	return options
}

// FindOption returns the option with the given value
func FindOption(options []Option, value string) (Option, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
