package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("server.listen_address", "must not be empty")

	if !strings.Contains(err.Error(), "server.listen_address") {
		t.Errorf("Error() = %q, want field name included", err.Error())
	}

	bare := NewConfigError("", "failed to load config")
	if strings.Contains(bare.Error(), "in :") {
		t.Errorf("Error() = %q, field separator leaked for empty field", bare.Error())
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("listener closed")
	err := NewCommandError("run", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find wrapped cause")
	}
	if !strings.Contains(err.Error(), "run") {
		t.Errorf("Error() = %q, want command name included", err.Error())
	}
}
