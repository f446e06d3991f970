package models

// BearerToken is the decoded, shape-validated form of the delegation chain
// carried in access_token. The chain itself is produced and verified by the
// identity subsystem; only the outer structure is checked here.
type BearerToken struct {
	PublicKey   string             `json:"publicKey"`
	Delegations []SignedDelegation `json:"delegations"`
}

// SignedDelegation pairs one delegation link with its signature.
type SignedDelegation struct {
	Delegation Delegation `json:"delegation"`
	Signature  string     `json:"signature"`
}

// Delegation is a single link of the chain: a session public key and the
// expiration of its delegated authority.
type Delegation struct {
	Expiration string `json:"expiration"`
	Pubkey     string `json:"pubkey"`
}
