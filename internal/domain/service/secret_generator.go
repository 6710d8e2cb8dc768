package service

// SecretGenerator produces random secrets handed to users out of band.
type SecretGenerator interface {
	// TemporaryPassword returns a fresh password that satisfies the configured
	// strength rules.
	TemporaryPassword() (string, error)
}
