package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
	"sigvault/internal/services/vault"
)

// FingerprintHeader carries the public-key fingerprint of freshly generated keys.
const FingerprintHeader = "X-Key-Fingerprint"

// SignRequest is the body of POST /api/sign.
type SignRequest struct {
	DocumentBase64 string     `json:"documentBase64"`
	NIF            domain.NIF `json:"nif"`
}

// VerifyRequest is the body of POST /api/signature/verify.
type VerifyRequest struct {
	DocumentBase64  string     `json:"documentBase64"`
	SignatureBase64 string     `json:"signatureBase64"`
	NIF             domain.NIF `json:"nif"`
}

// PublicKeyInfo is the body of GET /api/userkeys/{nif}.
type PublicKeyInfo = domain.PublicKeyInfo

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.NewIdentity
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := s.svc.Identities.CreateIdentity(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.NewIdentity{FirstName: id.FirstName, LastName: id.LastName, NIF: id.NIF})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := s.svc.Identities.LookupIdentity(r.Context(), domain.NIF(r.PathValue("nif")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Identities.DeleteIdentity(r.Context(), domain.NIF(r.PathValue("nif"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGenerateKeys(w http.ResponseWriter, r *http.Request) {
	nif := domain.NIF(r.PathValue("nif"))
	rec, err := s.svc.Vault.GenerateKeyPair(r.Context(), nif)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.metrics.keysGenerated.Inc()

	if fp, err := vault.Fingerprint(rec); err == nil {
		w.Header().Set(FingerprintHeader, fp.String())
	}
	writeText(w, http.StatusOK, fmt.Sprintf("Keys generated for user: %s", nif.Normalize()))
}

func (s *Server) handleGetKeys(w http.ResponseWriter, r *http.Request) {
	nif := domain.NIF(r.PathValue("nif"))
	rec, err := s.svc.Vault.ResolveKeyPair(r.Context(), nif)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fp, err := vault.Fingerprint(rec)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PublicKeyInfo{
		NIF:         nif.Normalize(),
		PublicKey:   rec.PublicKey,
		Fingerprint: fp,
		CreatedAt:   rec.CreatedAt,
	})
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request) {
	var in SignRequest
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := crypto.FromB64(in.DocumentBase64)
	if err != nil {
		writeError(w, r, fmt.Errorf("documentBase64: %w", err))
		return
	}

	sig, err := s.svc.Signer.SignDocument(r.Context(), domain.SigningRequest{NIF: in.NIF, Document: doc})
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.metrics.signatures.Inc()
	writeText(w, http.StatusOK, crypto.B64(sig))
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var in VerifyRequest
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := crypto.FromB64(in.DocumentBase64)
	if err != nil {
		writeError(w, r, fmt.Errorf("documentBase64: %w", err))
		return
	}
	sig, err := crypto.FromB64(in.SignatureBase64)
	if err != nil {
		writeError(w, r, fmt.Errorf("signatureBase64: %w", err))
		return
	}

	ok, err := s.svc.Verifier.VerifySignature(r.Context(), domain.VerificationRequest{NIF: in.NIF, Document: doc, Signature: sig})
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.metrics.verifications.WithLabelValues(fmt.Sprint(ok)).Inc()
	writeJSON(w, http.StatusOK, ok)
}

// decodeBody reads a single JSON object into out. Any decoding failure,
// including an oversized body, is malformed input.
func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return fmt.Errorf("%w: body exceeds %d bytes", domain.ErrMalformedInput, tooBig.Limit)
		}
		return fmt.Errorf("%w: invalid JSON body: %v", domain.ErrMalformedInput, err)
	}
	return nil
}
