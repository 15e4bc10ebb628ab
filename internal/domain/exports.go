package domain

import (
	interfaces "sigvault/internal/domain/interfaces"
	types "sigvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	NIF                 = types.NIF
	Fingerprint         = types.Fingerprint
	Identity            = types.Identity
	NewIdentity         = types.NewIdentity
	KeyPairRecord       = types.KeyPairRecord
	PublicKeyInfo       = types.PublicKeyInfo
	SigningRequest      = types.SigningRequest
	VerificationRequest = types.VerificationRequest
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityDirectory   = interfaces.IdentityDirectory
	KeyPairRepository   = interfaces.KeyPairRepository
	IdentityService     = interfaces.IdentityService
	KeyVault            = interfaces.KeyVault
	SigningService      = interfaces.SigningService
	VerificationService = interfaces.VerificationService
	SignatureGateway    = interfaces.SignatureGateway
)
