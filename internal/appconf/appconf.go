package appconf

// Environment identifies the operating environment for the Application.
type Environment int

const (
	Development Environment = iota
	Test
	Staging
	Production
)

// Config holds all the configuration settings for the Application: the
// network port the server listens on, the operating environment, the set
// of valid API keys, the per-key rate limit, and the path to the
// favorites database. Values are read from command-line flags when the
// Application starts.
type Config struct {
	Port            int
	Env             Environment
	ApiKeys         []string
	RateLimit       int
	FavoritesDBPath string
}

// EnvFlagToEnvironment converts an environment flag value to an Environment.
// Unrecognized values are treated as Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "staging":
		return Staging
	case "production":
		return Production
	default:
		return Development
	}
}

// String returns the flag-style name of the Environment.
func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Staging:
		return "staging"
	case Production:
		return "production"
	default:
		return "development"
	}
}
