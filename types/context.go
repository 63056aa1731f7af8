package types

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext carries application-wide values into command Run methods
type AppContext struct {
	Version string
}
