package password

import (
	"strings"
	"testing"
)

func testParams() Params {
	// Small but above the enforced floors, to keep the test fast.
	return Params{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestHashAndVerify(t *testing.T) {
	h, err := New(testParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	digest, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(digest, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("unexpected PHC prefix: %s", digest)
	}

	ok, err := h.Verify("password123", digest)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	h, err := New(testParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	digest, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := h.Verify("wrong-password", digest)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	h, err := New(testParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same input must differ by salt")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	h, err := New(testParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, digest := range []string{
		"",
		"not-a-phc-string",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$!!!",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
	} {
		if _, err := h.Verify("x", digest); err == nil {
			t.Fatalf("expected error for digest %q", digest)
		}
	}
}

func TestNeedsUpgrade(t *testing.T) {
	weak, err := New(testParams())
	if err != nil {
		t.Fatalf("New(weak): %v", err)
	}
	digest, err := weak.Hash("some-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	strong, err := New(Params{
		Memory:      16 * 1024,
		Time:        2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	if err != nil {
		t.Fatalf("New(strong): %v", err)
	}

	upgrade, err := strong.NeedsUpgrade(digest)
	if err != nil {
		t.Fatalf("NeedsUpgrade: %v", err)
	}
	if !upgrade {
		t.Fatal("digest under weaker params should need upgrade")
	}

	upgrade, err = weak.NeedsUpgrade(digest)
	if err != nil {
		t.Fatalf("NeedsUpgrade: %v", err)
	}
	if upgrade {
		t.Fatal("digest under current params should not need upgrade")
	}
}

func TestNewRejectsWeakParams(t *testing.T) {
	bad := []Params{
		{Memory: 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32},
		{Memory: 8192, Time: 0, Parallelism: 1, SaltLength: 16, KeyLength: 32},
		{Memory: 8192, Time: 1, Parallelism: 0, SaltLength: 16, KeyLength: 32},
		{Memory: 8192, Time: 1, Parallelism: 1, SaltLength: 8, KeyLength: 32},
		{Memory: 8192, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 8},
	}
	for i, p := range bad {
		if _, err := New(p); err == nil {
			t.Fatalf("case %d: expected error for weak params", i)
		}
	}
}
