package logic

// Selections are ordered by pick time and never contain duplicates. Every
// function here returns a new slice and leaves its input untouched.

// Contains reports whether value is selected
func Contains(selection []string, value string) bool {
	for _, v := range selection {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle removes value if it is selected, otherwise appends it
func Toggle(selection []string, value string) []string {
	if Contains(selection, value) {
		return Remove(selection, value)
	}
	out := make([]string, 0, len(selection)+1)
	out = append(out, selection...)
	return append(out, value)
}

// Remove drops value, keeping the order of the rest
func Remove(selection []string, value string) []string {
	out := make([]string, 0, len(selection))
	for _, v := range selection {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// Clear returns an empty selection
func Clear() []string {
	return []string{}
}
