// Package common contains shared constants and sentinel errors used across
// walletkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// LoginMethodEmail and LoginMethodProvider are the recognized values of the
// session login-method marker. Anything else is treated as absent.
const (
	LoginMethodEmail    = "email"
	LoginMethodProvider = "external-provider"
)
