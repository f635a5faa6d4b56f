package tour

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the tour.
const (
	EnvDBPath  = "GOFEATURES_DB_PATH"
	EnvNoColor = "GOFEATURES_NO_COLOR"
	EnvDebug   = "GOFEATURES_DEBUG"
)

// Config holds the runtime settings of the tour binary.
type Config struct {
	// DBPath is the sqlite DSN used by the ORM demos.
	// Empty means a private in-memory database per routine.
	DBPath string
	// NoColor disables styled output.
	NoColor bool
	// Debug enables debug-level runner diagnostics.
	Debug bool
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment. A missing .env file is not an error.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		DBPath:  os.Getenv(EnvDBPath),
		NoColor: envBool(EnvNoColor),
		Debug:   envBool(EnvDebug),
	}
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
