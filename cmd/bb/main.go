package main

import (
	"log"

	"github.com/mwnd/breakhook"
	logrus "github.com/sirupsen/logrus"
)

// bb is a manual smoke test for the breakpoint hook: it resolves the binding
// from the current environment and triggers one breakpoint.
//
//	PYDEBUG=ipdb go run ./cmd/bb
func main() {
	logrus.SetLevel(logrus.DebugLevel)
	if err := breakhook.Init(); err != nil {
		log.Fatalf("Failed to bind breakpoint: %v", err)
	}
	log.Printf("breakpoint bound to %q provider", breakhook.Selected())
	breakhook.BB()
	log.Print("resumed")
}
