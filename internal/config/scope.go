package config

// Scope identifies which layer of the configuration a value belongs to.
type Scope string

const (
	// ScopeGlobal is the user-wide configuration layer.
	ScopeGlobal Scope = "global"

	// ScopeProject is the per-project override layer.
	ScopeProject Scope = "project"
)

// String returns the scope's display name.
func (s Scope) String() string {
	return string(s)
}

// Valid reports whether s is a recognized scope.
func (s Scope) Valid() bool {
	return s == ScopeGlobal || s == ScopeProject
}
