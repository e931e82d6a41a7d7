package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/dutctl/internal/agent"
	"github.com/danmuck/dutctl/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "agent config file (.toml, .yaml or .yml)")
	ifaceSpec := flag.String("interface", "", "wireless interface name or band:name list, e.g. 2:wlan0,5:wlan1")
	ip := flag.String("ip", "", "control socket listen address")
	port := flag.Int("port", 0, "control socket UDP port")
	admin := flag.String("admin", "", "admin HTTP listen address (empty disables)")
	logFile := flag.String("log-file", "", "also write logs to this rotating file")
	flag.Parse()

	cfg := agent.DefaultServiceConfig()
	var fileLog string
	if *configPath != "" {
		loaded, lf, err := loadServiceConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dutctl: %v\n", err)
			os.Exit(1)
		}
		cfg, fileLog = loaded, lf
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interface":
			cfg.Interface = *ifaceSpec
		case "ip":
			cfg.ListenIP = *ip
		case "port":
			cfg.ListenPort = *port
		case "admin":
			cfg.AdminListenAddr = *admin
		case "log-file":
			fileLog = *logFile
		}
	})

	if fileLog != "" {
		logging.ConfigureRuntimeWithFile(fileLog)
	} else {
		logging.ConfigureRuntime()
	}

	svc, err := agent.NewService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dutctl: %v\n", err)
		os.Exit(1)
	}
	if err := svc.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "dutctl: %v\n", err)
		os.Exit(1)
	}
}
