package context

// Environment is the interface to the process environment.
type Environment interface {
	// Lookup returns the value of the variable named key, and whether it is
	// set at all.
	Lookup(key string) (string, bool)
}
