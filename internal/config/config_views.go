package config

// ClientConfig is the subset of [StructuredConfig] the terminal client needs.
type ClientConfig struct {
	Adapter Adapter
	Log     Log
}

// ServerConfig is the subset of [StructuredConfig] the auth server needs.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

// GetClientConfig builds the merged configuration and narrows it to the
// client view. args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds the merged configuration and narrows it to the
// server view. args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
