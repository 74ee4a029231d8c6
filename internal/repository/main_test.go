package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"trainit-backend/internal/testutils"
)

// TestMain runs before all repository tests and releases the shared test database afterwards
func TestMain(m *testing.M) {
	// Clean up on interruption (Ctrl+C) as well
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Repository tests interrupted, cleaning up test database...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
