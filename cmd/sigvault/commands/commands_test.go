// cmd/sigvault/commands/commands_test.go
package commands_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"sigvault/cmd/sigvault/commands"
	"sigvault/internal/app"
	"sigvault/internal/crypto"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSecret_PrintsUsableKey(t *testing.T) {
	out, err := run(t, "", "secret")
	if err != nil {
		t.Fatalf("secret: %v", err)
	}
	if _, err := crypto.ParseMasterSecret(strings.TrimSpace(out)); err != nil {
		t.Fatalf("printed secret does not parse: %v", err)
	}
}

func TestLocalFlow(t *testing.T) {
	t.Setenv(app.EnvStorageDriver, "file")
	t.Setenv(app.EnvStoragePath, t.TempDir())
	t.Setenv(app.EnvMasterSecret, "command test master secret")
	t.Setenv(app.EnvLogLevel, "error")

	if _, err := run(t, "", "user", "create", "12345678A", "--first-name", "Ana"); err != nil {
		t.Fatalf("user create: %v", err)
	}
	out, err := run(t, "", "keys", "generate", "12345678A")
	if err != nil {
		t.Fatalf("keys generate: %v", err)
	}
	if !strings.Contains(out, "Keys generated for user: 12345678A") || !strings.Contains(out, "Fingerprint: ") {
		t.Fatalf("keys generate output %q", out)
	}

	fp := out[strings.Index(out, "Fingerprint: ")+len("Fingerprint: "):]
	fp = strings.TrimSpace(fp)

	out, err = run(t, "", "keys", "show", "12345678A")
	if err != nil {
		t.Fatalf("keys show: %v", err)
	}
	if !strings.Contains(out, "Fingerprint: "+fp) || !strings.Contains(out, "Public key:  ") {
		t.Fatalf("keys show output %q", out)
	}
	if _, err := run(t, "", "keys", "show", "87654321B"); err == nil {
		t.Fatal("keys show for unknown identity succeeded")
	}

	sig, err := run(t, "Document to sign", "sign", "12345678A")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig = strings.TrimSpace(sig)

	out, err = run(t, "", "verify", "12345678A", "--signature", sig, "--text", "Document to sign")
	if err != nil || strings.TrimSpace(out) != "true" {
		t.Fatalf("verify: %q err=%v", out, err)
	}
	out, err = run(t, "", "verify", "12345678A", "--signature", sig, "--text", "Document to sigm")
	if err != nil || strings.TrimSpace(out) != "false" {
		t.Fatalf("verify tampered: %q err=%v", out, err)
	}

	if _, err := run(t, "", "keys", "generate", "12345678A"); err == nil {
		t.Fatal("second generate succeeded")
	}
}
