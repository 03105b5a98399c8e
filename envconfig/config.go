// config.go - Haupt-Konfigurationsfunktionen fuer Mobinfer
//
// Dieses Modul enthaelt:
// - Host: Gibt Scheme und Host zurueck (MOBINFER_HOST)
// - AllowedOrigins: Gibt erlaubte Origins zurueck (MOBINFER_ORIGINS)
// - NumThreads: Gibt Worker-Anzahl fuer CPU-Kernels zurueck (MOBINFER_NUM_THREADS)
// - LogLevel: Gibt Log-Level zurueck (MOBINFER_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Host gibt Scheme und Host zurueck
// Konfigurierbar via MOBINFER_HOST
// Default: http://127.0.0.1:11711
func Host() *url.URL {
	defaultPort := "11711"

	s := strings.TrimSpace(Var("MOBINFER_HOST"))
	scheme, hostport, ok := strings.Cut(s, "://")
	switch {
	case !ok:
		scheme, hostport = "http", s
	case scheme == "http":
		defaultPort = "80"
	case scheme == "https":
		defaultPort = "443"
	}

	hostport, path, _ := strings.Cut(hostport, "/")
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = "127.0.0.1", defaultPort
		if ip := net.ParseIP(strings.Trim(hostport, "[]")); ip != nil {
			host = ip.String()
		} else if hostport != "" {
			host = hostport
		}
	}

	if n, err := strconv.ParseInt(port, 10, 32); err != nil || n > 65535 || n < 0 {
		slog.Warn("invalid port, using default", "port", port, "default", defaultPort)
		port = defaultPort
	}

	return &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, port),
		Path:   path,
	}
}

// AllowedOrigins gibt erlaubte Origins zurueck
// Konfigurierbar via MOBINFER_ORIGINS (komma-separiert)
// Enthaelt Standard-Origins fuer localhost
func AllowedOrigins() (origins []string) {
	if s := Var("MOBINFER_ORIGINS"); s != "" {
		origins = strings.Split(s, ",")
	}

	// Standard-Origins fuer localhost
	for _, origin := range []string{"localhost", "127.0.0.1", "0.0.0.0"} {
		origins = append(origins,
			fmt.Sprintf("http://%s", origin),
			fmt.Sprintf("https://%s", origin),
			fmt.Sprintf("http://%s", net.JoinHostPort(origin, "*")),
			fmt.Sprintf("https://%s", net.JoinHostPort(origin, "*")),
		)
	}

	// App-Protokolle
	origins = append(origins,
		"app://*",
		"file://*",
	)

	return origins
}

// numThreads liest MOBINFER_NUM_THREADS (0 bei unset oder ungueltigem Wert)
var numThreads = Uint("MOBINFER_NUM_THREADS", 0)

// NumThreads gibt die Worker-Anzahl fuer CPU-Kernels zurueck
// Konfigurierbar via MOBINFER_NUM_THREADS
// 0 oder unset = runtime.NumCPU()
func NumThreads() int {
	if n := numThreads(); n > 0 {
		return int(n)
	}
	return runtime.NumCPU()
}

// Debug meldet ob MOBINFER_DEBUG gesetzt ist (jeder nicht-falsy Wert zaehlt)
var Debug = Bool("MOBINFER_DEBUG")

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via MOBINFER_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("MOBINFER_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
