package configs

// HTTP defines configuration for the HTTP server. The Port specifies which
// port the server will bind to; both the public newsletter endpoints and
// the admin surface are served from the same listener.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
