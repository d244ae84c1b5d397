package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/munin-contrib/munin-mysqlstats/internal/mysql"
	"github.com/munin-contrib/munin-mysqlstats/internal/plugin"
)

func init() {
	log.SetFormatter(&prefixed.TextFormatter{})
	log.SetLevel(log.InfoLevel)
	// stdout carries the munin protocol, so all logging goes to stderr.
	log.SetOutput(os.Stderr)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [config|autoconf]\n", os.Args[0])
}

func main() {
	mode := ""
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	conf, err := plugin.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.WithError(err).Error("Invalid plugin configuration")
		os.Exit(1)
	}

	source, err := mysql.NewInfo(conf.Host, conf.Port, conf.Database, conf.User, conf.Password)
	if err != nil {
		log.WithError(err).Error("Could not set up MySQL connection")
		os.Exit(1)
	}
	defer source.Close()

	ctx := context.Background()

	p, err := plugin.New(ctx, conf, source)
	if err != nil {
		log.WithError(err).Error("Could not build graph registry")
		os.Exit(1)
	}

	// Output is buffered so that a mid-cycle failure emits nothing
	// instead of a truncated protocol block.
	var buf bytes.Buffer
	switch mode {
	case "autoconf":
		err = p.Autoconf(ctx, &buf)
	case "config":
		err = p.Configure(ctx, &buf, os.Getenv("MUNIN_CAP_DIRTYCONFIG") == "1")
	case "", "fetch":
		err = p.Fetch(ctx, &buf)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.WithError(err).Error("Plugin run failed")
		os.Exit(1)
	}

	os.Stdout.Write(buf.Bytes())
}
