// Example identity provider. It accepts IC-ID authentication requests on
// /icid/v1/authorize and answers every one of them with a demo delegation
// chain, which makes it useful for wiring up relying parties locally.
package main

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"github.com/icid-go/icid"
	"github.com/icid-go/icid/models"
	"github.com/icid-go/icid/scope"
	"github.com/icid-go/icid/server"
	"github.com/icid-go/icid/store"
)

// demoPrincipal accepts dash-joined base32-style groups, the canonical text
// shape of ledger principals, without the checksum math of a real codec.
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

// demoIssuer hands out unsigned single-link chains. A real deployment plugs
// the identity subsystem in here.
type demoIssuer struct{}

func (demoIssuer) Issue(_ context.Context, sessionPublicKeyHex string, _ []icid.Principal) (any, error) {
	return &models.BearerToken{
		PublicKey: sessionPublicKeyHex,
		Delegations: []models.SignedDelegation{
			{
				Delegation: models.Delegation{
					Expiration: "1700000000000000000",
					Pubkey:     sessionPublicKeyHex,
				},
				Signature: "0000",
			},
		},
	}, nil
}

func main() {
	cfg := server.GetConfig()

	var requests store.PendingStore
	if addr := cfg.ValkeyAddr(); addr != "" {
		vs, err := store.NewValkeyPendingStore(addr, cfg.Valkey.Prefix)
		if err != nil {
			log.Fatalf("valkey: %v", err)
		}
		requests = vs
	} else {
		requests = store.NewMemoryPendingStore()
	}

	srvCfg := server.NewConfig()
	srvCfg.ExpiresIn = cfg.Issuer.ExpiresIn

	s := server.NewServer(srvCfg, demoIssuer{}, &scope.Codec{
		Principals: demoPrincipalCodec{},
		Logger:     log.Default(),
	}, requests)

	r := server.NewGinEngine(s)
	log.Printf("example identity provider listening on %s", cfg.Listen)
	log.Fatal(r.Run(cfg.Listen))
}
