package main

import "testing"

func TestRootCommandRequiresTwoArgs(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"onlyone"}); err == nil {
		t.Error("rootCmd.Args accepted a single argument, want it to require exactly two")
	}
}

func TestRootCommandAcceptsTwoArgs(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"dir", "query"}); err != nil {
		t.Errorf("rootCmd.Args rejected two arguments: %v", err)
	}
}
