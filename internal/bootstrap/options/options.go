// Package options exposes the proxy's command-line surface. Per spec.md
// §6 "CLI" this is explicitly a collaborator concern, kept separate from
// the core components so they stay free of flag-parsing.
package options

import "github.com/spf13/cobra"

// Options holds the resolved flag values for one run of the proxy.
type Options struct {
	ListenIP      string
	ListenPort    int
	DefaultServer string
	PolicyFile    string
	DataDir       string
	MetricsAddr   string
	LogLevel      string
}

// Default returns the flag defaults named in spec.md §6.
func Default() Options {
	return Options{
		ListenIP:      "127.0.0.1",
		ListenPort:    0, // 0 means "use the port extracted from the client"
		DefaultServer: "USEast",
		MetricsAddr:   "127.0.0.1:9090",
		LogLevel:      "info",
	}
}

// Register binds the proxy's flags onto cmd, writing parsed values into o.
func Register(cmd *cobra.Command, o *Options) {
	flags := cmd.Flags()
	flags.StringVar(&o.ListenIP, "listen-ip", o.ListenIP, "address to listen on")
	flags.IntVar(&o.ListenPort, "listen-port", o.ListenPort, "port to listen on (0: use the port extracted from the client)")
	flags.StringVar(&o.DefaultServer, "default-server", o.DefaultServer, "short name of the default upstream server")
	flags.StringVar(&o.PolicyFile, "policy-file", o.PolicyFile, "path to a policy-file payload (default: built-in allow-all)")
	flags.StringVar(&o.DataDir, "data-dir", o.DataDir, "directory for the cached extracted parameters (default: OS user config dir)")
	flags.StringVar(&o.MetricsAddr, "metrics-addr", o.MetricsAddr, "address for the /metrics and /healthz HTTP surface")
	flags.StringVar(&o.LogLevel, "log-level", o.LogLevel, "logrus level (trace, debug, info, warn, error)")
}
