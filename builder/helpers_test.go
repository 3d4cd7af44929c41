package builder_test

import "testing"

// assertPanics runs fn and fails the test if it does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
