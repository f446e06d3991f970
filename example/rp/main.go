// Example relying party. It sends the browser to the identity provider with
// an IC-ID authentication request and decodes the delegation chain out of
// the callback.
package main

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"regexp"

	"github.com/icid-go/icid"
	"github.com/icid-go/icid/client"
	"github.com/icid-go/icid/models"
	"github.com/icid-go/icid/scope"
)

var (
	idpURL      = env("ICID_IDP_URL", "http://localhost:9096/icid/v1/authorize")
	redirectURL = env("ICID_REDIRECT_URL", "http://localhost:9098/callback")
	sessionKey  = env("ICID_SESSION_KEY_HEX", "deadbeef")
	canister    = env("ICID_CANISTER", "ryjl3-tyaaa-aaaaa-aaaba-cai")
	state       = env("ICID_STATE", "xyz")
)

type demoPrincipal string

func (p demoPrincipal) Text() string { return string(p) }

var principalText = regexp.MustCompile(`^([a-z0-9]{5}-)+[a-z0-9]{3}$`)

type demoPrincipalCodec struct{}

func (demoPrincipalCodec) Parse(text string) (icid.Principal, error) {
	if !principalText.MatchString(text) {
		return nil, fmt.Errorf("invalid principal text: %q", text)
	}
	return demoPrincipal(text), nil
}

var rp *client.Client

func main() {
	idp, err := url.Parse(idpURL)
	if err != nil {
		log.Fatalf("bad ICID_IDP_URL: %v", err)
	}
	rp = &client.Client{
		IdentityProvider: idp,
		Scopes:           &scope.Codec{Principals: demoPrincipalCodec{}},
	}

	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/login", handleLogin)
	http.HandleFunc("/callback", handleCallback)

	port := os.Getenv("ICID_RP_PORT")
	if port == "" {
		port = "9098"
	}
	log.Printf("example relying party running at http://localhost:%s", port)
	log.Printf("Config: IDP=%s REDIRECT_URL=%s CANISTER=%s", idpURL, redirectURL, canister)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<h1>IC-ID Example Relying Party</h1>
	<ul>
		<li><a href="/login">Authenticate via identity provider</a></li>
	</ul>`)
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	p, err := rp.Scopes.Principals.Parse(canister)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	req, err := rp.NewAuthenticationRequest(sessionKey, redirectURL, state, scope.Targets{
		Canisters: []scope.Target{{Principal: p}},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, rp.AuthorizeURL(req).String(), http.StatusFound)
}

func handleCallback(w http.ResponseWriter, r *http.Request) {
	msg, err := rp.DecodeCallback(r.URL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, ok := msg.(*models.AuthenticationResponse)
	if !ok {
		http.Error(w, "callback did not carry an access-token response", http.StatusBadRequest)
		return
	}
	if resp.State != state {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}

	chain, err := rp.DelegationChain(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<h1>Authenticated</h1>
	<pre>publicKey=%s
delegations=%d
expires_in=%d
scope=%s</pre>`, chain.PublicKey, len(chain.Delegations), resp.ExpiresIn, resp.Scope)
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
