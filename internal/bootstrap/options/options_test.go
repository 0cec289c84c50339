package options

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterOverridesDefaults(t *testing.T) {
	o := Default()
	cmd := &cobra.Command{Use: "rotmg-proxy"}
	Register(cmd, &o)

	if err := cmd.Flags().Set("listen-port", "2050"); err != nil {
		t.Fatalf("Set listen-port: %v", err)
	}
	if err := cmd.Flags().Set("default-server", "USWest3"); err != nil {
		t.Fatalf("Set default-server: %v", err)
	}

	if o.ListenPort != 2050 {
		t.Fatalf("ListenPort = %d", o.ListenPort)
	}
	if o.DefaultServer != "USWest3" {
		t.Fatalf("DefaultServer = %q", o.DefaultServer)
	}
}

func TestDefaultValues(t *testing.T) {
	o := Default()
	if o.ListenIP != "127.0.0.1" {
		t.Fatalf("ListenIP = %q", o.ListenIP)
	}
	if o.DefaultServer != "USEast" {
		t.Fatalf("DefaultServer = %q", o.DefaultServer)
	}
	if o.MetricsAddr != "127.0.0.1:9090" {
		t.Fatalf("MetricsAddr = %q", o.MetricsAddr)
	}
	if o.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", o.LogLevel)
	}
}
