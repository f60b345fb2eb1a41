// Command master is a small lobby server for local testing. Hosts register
// their games and the join screen lists them.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/automoto/warfront/shared/log"
)

func main() {
	port := flag.Int("port", 9990, "HTTP listen port")
	ttl := flag.Duration("ttl", 90*time.Second, "Game TTL before expiry")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatal("%v", err)
	}
	log.SetLevel(level)

	reg := NewRegistry(*ttl)
	go reg.Run(30 * time.Second)

	addr := fmt.Sprintf(":%d", *port)
	log.Info("[lobby] starting on %s (TTL=%s)", addr, *ttl)
	if err := http.ListenAndServe(addr, NewMux(reg)); err != nil {
		log.Fatal("[lobby] %v", err)
	}
}
