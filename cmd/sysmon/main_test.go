package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--disk", "--version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "SysMon "+version+"\n", stdout.String())
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage: sysmon")
	assert.Contains(t, stderr.String(), "-cpu")
}

func TestRunBadArguments(t *testing.T) {
	for _, args := range [][]string{
		{"--gpu"},
		{"--cpu", "extra"},
	} {
		var stdout, stderr bytes.Buffer

		code := run(args, &stdout, &stderr)

		assert.Equal(t, 2, code, "args %v", args)
		assert.Empty(t, stdout.String())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	t.Setenv("SYSMON_PUBLIC_IP_TIMEOUT", "0")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--mem"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "PublicIPTimeout")
}

func TestRunIgnoresForeignRedisURL(t *testing.T) {
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("SYSMON_REDIS_URL", "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--mem"}, &stdout, &stderr)

	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "System Monitor - "+version)
	assert.NotContains(t, stderr.String(), "Redis")
}

func TestRunBadMirrorURLIsNotFatal(t *testing.T) {
	t.Setenv("SYSMON_REDIS_URL", "localhost:6379")
	t.Setenv("SYSMON_LOG_PATH", t.TempDir()+"/logs/sysmon.log")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--mem", "--log"}, &stdout, &stderr)

	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "System Monitor - "+version)
	assert.Contains(t, stderr.String(), "Log mirror disabled")
}
