package identity

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/domain"
)

var log = logging.Logger("sigvault/identity")

const (
	// maxNIFLength bounds identifiers; real NIFs are nine characters.
	maxNIFLength = 32

	maxNameLength = 128
)

// Service manages identity registration using a backing directory.
type Service struct {
	dir domain.IdentityDirectory
	now func() time.Time
}

// New returns an identity service backed by the given directory.
func New(dir domain.IdentityDirectory) *Service {
	return &Service{dir: dir, now: time.Now}
}

// CreateIdentity registers a new identity and returns it with its assigned id.
func (s *Service) CreateIdentity(ctx context.Context, in domain.NewIdentity) (domain.Identity, error) {
	nif, err := ValidateNIF(in.NIF)
	if err != nil {
		return domain.Identity{}, err
	}
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if len(first) > maxNameLength || len(last) > maxNameLength {
		return domain.Identity{}, fmt.Errorf("%w: name longer than %d characters", domain.ErrMalformedInput, maxNameLength)
	}

	id := domain.Identity{
		ID:        uuid.New(),
		NIF:       nif,
		FirstName: first,
		LastName:  last,
		CreatedAt: s.now().UTC(),
	}
	if err := s.dir.CreateIdentity(ctx, id); err != nil {
		return domain.Identity{}, err
	}
	log.Infof("Registered identity %s", nif)
	return id, nil
}

// LookupIdentity returns the identity registered under nif.
func (s *Service) LookupIdentity(ctx context.Context, nif domain.NIF) (domain.Identity, error) {
	nif, err := ValidateNIF(nif)
	if err != nil {
		return domain.Identity{}, err
	}
	id, ok, err := s.dir.FindIdentityByNIF(ctx, nif)
	if err != nil {
		return domain.Identity{}, err
	}
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: %s", domain.ErrIdentityNotFound, nif)
	}
	return id, nil
}

// DeleteIdentity removes the identity and, with it, its key pair.
func (s *Service) DeleteIdentity(ctx context.Context, nif domain.NIF) error {
	nif, err := ValidateNIF(nif)
	if err != nil {
		return err
	}
	if err := s.dir.DeleteIdentity(ctx, nif); err != nil {
		return err
	}
	log.Infof("Deleted identity %s", nif)
	return nil
}

// ValidateNIF trims nif and checks it is a non-empty run of letters, digits
// and dashes no longer than maxNIFLength.
func ValidateNIF(nif domain.NIF) (domain.NIF, error) {
	nif = nif.Normalize()
	if nif.Empty() {
		return "", fmt.Errorf("%w: nif is required", domain.ErrMalformedInput)
	}
	if len(nif) > maxNIFLength {
		return "", fmt.Errorf("%w: nif longer than %d characters", domain.ErrMalformedInput, maxNIFLength)
	}
	for _, r := range nif.String() {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return "", fmt.Errorf("%w: nif contains %q", domain.ErrMalformedInput, r)
		}
	}
	return nif, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
