package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBMICommand(t *testing.T) {
	out, err := execute(t, "bmi", "--height", "175", "--weight", "70")
	if err != nil {
		t.Fatalf("bmi failed: %v", err)
	}
	if !strings.Contains(out, "22.9") || !strings.Contains(out, "Normal") {
		t.Errorf("output missing BMI result: %q", out)
	}
	if !strings.Contains(out, "2009") {
		t.Errorf("output missing calorie estimate: %q", out)
	}
}

func TestBMICommand_ZeroWeight(t *testing.T) {
	if _, err := execute(t, "bmi", "--height", "175", "--weight", "0"); err == nil {
		t.Error("expected error for zero weight")
	}
}

func TestLogSteps_InvalidCount(t *testing.T) {
	if _, err := execute(t, "log", "steps", "not-a-number"); err == nil {
		t.Error("expected error for non-numeric step count")
	}
}

func TestLogSteps_MissingArgs(t *testing.T) {
	if _, err := execute(t, "log", "steps"); err == nil {
		t.Error("expected error due to missing args")
	}
}
