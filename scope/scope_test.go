package scope

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"regexp"
	"testing"

	"github.com/icid-go/icid"
)

// Test double for the ledger's principal codec: canonical text is dash-joined
// base32-style groups, e.g. "ryjl3-tyaaa-aaaaa-aaaba-cai".
var principalText = regexp.MustCompile(`^([a-z0-9]{5}-)+[a-z0-9]{3}$`)

var errBadPrincipal = errors.New("invalid principal text")

type fakePrincipal string

func (p fakePrincipal) Text() string { return string(p) }

type fakeCodec struct{}

func (fakeCodec) Parse(text string) (icid.Principal, error) {
	if !principalText.MatchString(text) {
		return nil, fmt.Errorf("%w: %q", errBadPrincipal, text)
	}
	return fakePrincipal(text), nil
}

func TestScopeRoundTrip(t *testing.T) {
	c := &Codec{Principals: fakeCodec{}}
	targets := Targets{Canisters: []Target{
		{Principal: fakePrincipal("ryjl3-tyaaa-aaaaa-aaaba-cai")},
		{Principal: fakePrincipal("rrkah-fqaaa-aaaaa-aaaaq-cai")},
	}}

	encoded := c.Encode(targets)
	if encoded != "ryjl3-tyaaa-aaaaa-aaaba-cai rrkah-fqaaa-aaaaa-aaaaq-cai" {
		t.Fatalf("encoded = %q", encoded)
	}

	back, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(back.Canisters) != len(targets.Canisters) {
		t.Fatalf("length mismatch: %d vs %d", len(back.Canisters), len(targets.Canisters))
	}
	for i := range targets.Canisters {
		if back.Canisters[i].Principal.Text() != targets.Canisters[i].Principal.Text() {
			t.Fatalf("order not preserved at %d: %q", i, back.Canisters[i].Principal.Text())
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	c := &Codec{Principals: fakeCodec{}}
	if s := c.Encode(Targets{}); s != "" {
		t.Fatalf("empty targets encoded as %q", s)
	}
}

func TestDecodeDropsEmptySegments(t *testing.T) {
	c := &Codec{Principals: fakeCodec{}}
	back, err := c.Decode("  ryjl3-tyaaa-aaaaa-aaaba-cai\t \n")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(back.Canisters) != 1 {
		t.Fatalf("got %d canisters, want 1", len(back.Canisters))
	}
}

func TestDecodeEmptyString(t *testing.T) {
	c := &Codec{Principals: fakeCodec{}}
	back, err := c.Decode("")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(back.Canisters) != 0 {
		t.Fatalf("got %d canisters, want 0", len(back.Canisters))
	}
}

func TestDecodeInvalidSegmentPropagates(t *testing.T) {
	var buf bytes.Buffer
	c := &Codec{
		Principals: fakeCodec{},
		Logger:     log.New(&buf, "", 0),
	}
	_, err := c.Decode("not-a-principal")
	if !errors.Is(err, errBadPrincipal) {
		t.Fatalf("got %v, want codec parse error propagated unchanged", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("not-a-principal")) {
		t.Fatalf("diagnostic log missing bad segment: %q", buf.String())
	}
}

func TestDecodeFailsEvenWhenOtherSegmentsValid(t *testing.T) {
	c := &Codec{Principals: fakeCodec{}}
	_, err := c.Decode("ryjl3-tyaaa-aaaaa-aaaba-cai bogus")
	if err == nil {
		t.Fatal("expected error, invalid segments must not be dropped")
	}
}
