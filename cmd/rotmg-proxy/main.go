// Command rotmg-proxy is the intercepting MITM proxy: it downloads the
// Flash client, extracts the RC4 key and packet mapping from its
// bytecode, then accepts game connections and forwards them to the
// configured upstream server, re-enciphering each decoded packet as it
// crosses.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rotmg-proxy/internal/avm2"
	"rotmg-proxy/internal/bootstrap/fetch"
	"rotmg-proxy/internal/bootstrap/options"
	"rotmg-proxy/internal/bootstrap/paramcache"
	"rotmg-proxy/internal/bootstrap/serverlist"
	"rotmg-proxy/internal/cipher"
	"rotmg-proxy/internal/codec"
	"rotmg-proxy/internal/metrics"
	"rotmg-proxy/internal/proxy"
)

func main() {
	o := options.Default()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := &cobra.Command{
		Use:   "rotmg-proxy",
		Short: "Intercepting proxy for the Flash-era game protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, o)
		},
	}
	options.Register(root, &o)

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Fatal("rotmg-proxy exited with an error")
	}
}

func run(ctx context.Context, o options.Options) error {
	log := newLogger(o.LogLevel)

	dataDir := o.DataDir
	if dataDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("rotmg-proxy: resolving data dir: %w", err)
		}
		dataDir = configDir + "/rotmg-proxy"
	}

	keys, _, params, err := bootstrapParameters(ctx, dataDir, log)
	if err != nil {
		return err
	}

	servers, err := serverlist.Load(ctx, o.DefaultServer)
	if err != nil {
		return fmt.Errorf("rotmg-proxy: loading server list: %w", err)
	}
	upstreamHost := servers.Default()

	listenPort := o.ListenPort
	if listenPort == 0 {
		listenPort = int(params.Port)
	}

	policy := proxy.NewAllowAllPolicyResponder()
	if o.PolicyFile != "" {
		policy, err = proxy.LoadPolicyResponder(o.PolicyFile)
		if err != nil {
			return err
		}
	}
	log.WithField("version", params.Version).Info("resolved client parameters")

	server := proxy.NewServer(fmt.Sprintf("%s:%d", o.ListenIP, listenPort), proxy.Config{
		Keys:   keys,
		Policy: policy,
		Dial:   dialUpstream(upstreamHost, int(params.Port)),
	}, log)

	metricsServer := metrics.NewServer(o.MetricsAddr)
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil {
			log.WithError(err).Warn("metrics server exited")
		}
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(ctx) }()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	server.Stop()
	_ = metricsServer.Shutdown(context.Background())
	return nil
}

func bootstrapParameters(ctx context.Context, dataDir string, log *logrus.Logger) (cipher.KeyPair, *codec.PacketMappings, paramcache.Parameters, error) {
	cache, err := paramcache.New(dataDir)
	if err != nil {
		return cipher.KeyPair{}, nil, paramcache.Parameters{}, err
	}

	client := fetch.New("")
	downloaded, err := client.Fetch(ctx)
	if err != nil {
		return cipher.KeyPair{}, nil, paramcache.Parameters{}, fmt.Errorf("rotmg-proxy: fetching client: %w", err)
	}

	cachedURL, cachedDigest, cachedParams, ok, err := cache.Load()
	if err != nil {
		return cipher.KeyPair{}, nil, paramcache.Parameters{}, err
	}

	var params paramcache.Parameters
	if ok && cachedURL == downloaded.URL && !paramcache.Stale(cachedDigest, downloaded.Body) {
		log.Info("using cached extracted parameters")
		params = cachedParams
	} else {
		log.Info("extracting parameters from freshly downloaded client")
		params, err = extractParameters(downloaded.Body)
		if err != nil {
			return cipher.KeyPair{}, nil, paramcache.Parameters{}, err
		}
		if err := cache.Save(downloaded.URL, downloaded.Body, params); err != nil {
			log.WithError(err).Warn("failed to persist extracted parameters")
		}
	}

	keys, err := cipher.DecodeHexKeys(params.RC4Hex)
	if err != nil {
		return cipher.KeyPair{}, nil, paramcache.Parameters{}, err
	}
	mapping := codec.NewPacketMappings(params.PacketMappings)
	if unmapped := mapping.Unmapped(); len(unmapped) > 0 {
		log.WithField("unmapped", unmapped).Warn("packet catalog entries with no extracted wire id")
	}

	return keys, mapping, params, nil
}

func extractParameters(clientBytes []byte) (paramcache.Parameters, error) {
	abcBytes, err := avm2.LocateDoABC(clientBytes)
	if err != nil {
		return paramcache.Parameters{}, fmt.Errorf("rotmg-proxy: locating bytecode: %w", err)
	}
	file, err := avm2.ParseABC(abcBytes)
	if err != nil {
		return paramcache.Parameters{}, fmt.Errorf("rotmg-proxy: parsing bytecode: %w", err)
	}

	rc4Key, err := avm2.ExtractRC4Key(file)
	if err != nil {
		return paramcache.Parameters{}, fmt.Errorf("rotmg-proxy: extracting rc4 key: %w", err)
	}
	mapping, err := avm2.BuildPacketMapping(file, codec.SymbolicNames())
	if err != nil {
		return paramcache.Parameters{}, fmt.Errorf("rotmg-proxy: extracting packet mapping: %w", err)
	}
	basic, err := avm2.ExtractBasicParameters(file)
	if err != nil {
		return paramcache.Parameters{}, fmt.Errorf("rotmg-proxy: extracting basic parameters: %w", err)
	}

	return paramcache.Parameters{
		RC4Hex:         rc4Key,
		Version:        basic.Version,
		Port:           basic.Port,
		TutorialGameID: basic.TutorialGameID,
		NexusGameID:    basic.NexusGameID,
		RandomGameID:   basic.RandomRealmGameID,
		PacketMappings: mapping,
	}, nil
}

func dialUpstream(host string, port int) proxy.Dialer {
	addr := fmt.Sprintf("%s:%d", host, port)
	return func(ctx context.Context) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", addr)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
