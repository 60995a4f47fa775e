package verify

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bazil.org/pki/cli/clitest"
)

func TestVerifySelfSigned(t *testing.T) {
	key, _ := clitest.Key(t)
	cert := clitest.SelfSigned(t, key, "root", time.Now())
	res := clitest.Run(t, verify, cert, "--verify")
	if g, e := res.Status, 0; g != e {
		t.Fatalf("unexpected exit status: %d != %d\n%s", g, e, res.Stdout.String())
	}
	if g, e := res.Stdout.String(), "certificate trusted, lifetimes valid\n"; g != e {
		t.Errorf("unexpected output: %q != %q", g, e)
	}
}

func TestVerifyExpired(t *testing.T) {
	key, _ := clitest.Key(t)
	cert := clitest.SelfSigned(t, key, "old", time.Now().Add(-48*time.Hour))
	res := clitest.Run(t, verify, cert, "-v")
	if g, e := res.Status, 1; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
	if !strings.HasPrefix(res.Stdout.String(), "certificate untrusted: ") {
		t.Errorf("unexpected output: %q", res.Stdout.String())
	}
}

func TestVerifyWrongCA(t *testing.T) {
	key, _ := clitest.Key(t)
	cert := clitest.SelfSigned(t, key, "leaf", time.Now())
	other, _ := clitest.Key(t)
	ca := clitest.SelfSigned(t, other, "root", time.Now())
	path := filepath.Join(t.TempDir(), "ca.pem")
	if err := ioutil.WriteFile(path, ca, 0644); err != nil {
		t.Fatal(err)
	}
	res := clitest.Run(t, verify, cert, "--verify", "--cacert", path)
	if g, e := res.Status, 1; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
	if g, e := res.Stdout.String(), "certificate untrusted: issuer does not match CA subject\n"; g != e {
		t.Errorf("unexpected output: %q != %q", g, e)
	}
}

func TestVerifyMissingCA(t *testing.T) {
	key, _ := clitest.Key(t)
	cert := clitest.SelfSigned(t, key, "leaf", time.Now())
	res := clitest.Run(t, verify, cert, "--verify", "--cacert", filepath.Join(t.TempDir(), "nope.pem"))
	if g, e := res.Status, 1; g != e {
		t.Fatalf("unexpected exit status: %d != %d", g, e)
	}
}
