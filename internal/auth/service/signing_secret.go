package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	"github.com/lifebook/lifebook/internal/config"
	apperrors "github.com/lifebook/lifebook/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LoadSigningSecret resolves the token signing secret from configuration.
//
// When a KMS key URI and an encrypted secret are configured, the ciphertext
// is base64-decoded and decrypted through the gocloud.dev keeper. Otherwise
// the plain configured secret is used as-is. An empty result is an error:
// the server must never sign tokens with an empty key.
func LoadSigningSecret(ctx context.Context, cfg *config.Config) ([]byte, error) {
	if cfg.KMSKeyURI != "" && cfg.AuthSigningSecretCiphertext != "" {
		return decryptSigningSecret(ctx, cfg.KMSKeyURI, cfg.AuthSigningSecretCiphertext)
	}

	if cfg.AuthSigningSecret == "" {
		return nil, apperrors.New("auth signing secret is not configured")
	}
	return []byte(cfg.AuthSigningSecret), nil
}

func decryptSigningSecret(ctx context.Context, keyURI string, ciphertext string) ([]byte, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer keeper.Close()

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode signing secret ciphertext")
	}

	plaintext, err := keeper.Decrypt(ctx, raw)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt signing secret")
	}
	if len(plaintext) == 0 {
		return nil, apperrors.New("decrypted signing secret is empty")
	}

	return plaintext, nil
}
