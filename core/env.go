package core

// PackEnv is the side a file is installed on
type PackEnv string

// The three possible values of PackEnv are "both", "client" and "server".
const (
	EnvBoth   PackEnv = "both"
	EnvClient PackEnv = "client"
	EnvServer PackEnv = "server"
)

// DefaultEnv is the environment of a file that does not specify one
func DefaultEnv() PackEnv {
	return EnvBoth
}

// ParseEnv converts a lowercase token into a PackEnv
func ParseEnv(s string) (PackEnv, error) {
	return parseEnv("environment", s)
}

func parseEnv(path, s string) (PackEnv, error) {
	return parseToken(path, s, EnvBoth, EnvClient, EnvServer)
}

// OnClient reports whether files with this environment are installed on clients
func (e PackEnv) OnClient() bool {
	return e == EnvBoth || e == EnvClient
}

// OnServer reports whether files with this environment are installed on servers
func (e PackEnv) OnServer() bool {
	return e == EnvBoth || e == EnvServer
}
