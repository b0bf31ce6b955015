package main

import "testing"

func TestMainSkipsWhenRequested(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	// Must return immediately without binding any port.
	main()
}
