package protocol

import (
	"errors"
	"reflect"
	"testing"

	icerrors "github.com/icid-go/icid/errors"
	"github.com/icid-go/icid/models"
)

func TestRequestRoundTrip(t *testing.T) {
	cases := []*models.AuthenticationRequest{
		{
			SessionIdentity: models.SessionIdentity{Hex: "deadbeef"},
			RedirectURI:     "https://rp.example/cb",
			Scope:           "aaaa bbbb",
			State:           "xyz",
		},
		{
			SessionIdentity: models.SessionIdentity{Hex: "00ff"},
			RedirectURI:     "https://rp.example/cb?foo=1",
			Scope:           "",
			State:           "",
		},
	}
	for _, req := range cases {
		back, err := FromOAuth2Request(ToOAuth2Request(req))
		if err != nil {
			t.Fatalf("round-trip failed for %+v: %v", req, err)
		}
		if !reflect.DeepEqual(back, req) {
			t.Fatalf("round-trip mismatch: in=%+v out=%+v", req, back)
		}
	}
}

func TestToOAuth2RequestFixedFields(t *testing.T) {
	req := &models.AuthenticationRequest{
		SessionIdentity: models.SessionIdentity{Hex: "deadbeef"},
		RedirectURI:     "https://rp.example/cb",
		Scope:           "aaaa",
	}
	wire := ToOAuth2Request(req)
	if wire.ResponseType != "token" {
		t.Fatalf("response_type = %q, want token", wire.ResponseType)
	}
	if wire.LoginHint != "deadbeef" {
		t.Fatalf("login_hint = %q, want session key hex", wire.LoginHint)
	}
}

func TestFromOAuth2RequestMalformedRedirectURI(t *testing.T) {
	cases := []string{
		"",
		"not a url",
		"/relative/path",
		"rp.example/cb",
		"://missing-scheme",
	}
	for _, uri := range cases {
		_, err := FromOAuth2Request(&models.AuthorizationRequest{
			LoginHint:   "deadbeef",
			RedirectURI: uri,
		})
		if !errors.Is(err, icerrors.ErrMalformedRedirectURI) {
			t.Fatalf("redirect_uri %q: got err %v, want ErrMalformedRedirectURI", uri, err)
		}
	}
}

func TestFromOAuth2RequestScopeDefault(t *testing.T) {
	req, err := FromOAuth2Request(&models.AuthorizationRequest{
		LoginHint:   "deadbeef",
		RedirectURI: "https://rp.example/cb",
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if req.Scope != "" {
		t.Fatalf("scope = %q, want empty default", req.Scope)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	resp := &models.AuthenticationResponse{
		AccessToken: "ab12",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		State:       "xyz",
		Scope:       "aaaa bbbb",
	}
	back := FromOAuth2Response(ToOAuth2Response(resp))
	if !reflect.DeepEqual(back, resp) {
		t.Fatalf("round-trip mismatch: in=%+v out=%+v", resp, back)
	}
}

func TestFromOAuth2ResponseTokenTypeDefault(t *testing.T) {
	resp := FromOAuth2Response(&models.AccessTokenResponse{
		AccessToken: "ab12",
		ExpiresIn:   3600,
	})
	if resp.TokenType != "bearer" {
		t.Fatalf("token_type = %q, want bearer default", resp.TokenType)
	}
}
