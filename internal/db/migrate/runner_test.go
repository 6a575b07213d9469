package migrate

import (
	"strings"
	"testing"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", "up")
	if err == nil {
		t.Fatal("Run should fail without a DSN")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("err = %v, want a DATABASE_URL hint", err)
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	err := Run("postgres://localhost/usip", "sideways")
	if err == nil {
		t.Fatal("Run should reject an unknown direction")
	}
	if !strings.Contains(err.Error(), "sideways") {
		t.Errorf("err = %v, want the rejected direction named", err)
	}
}
