package auth

import (
	"context"
	"strings"

	"arena/config"
	"arena/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"gocloud.dev/runtimevar"
	_ "gocloud.dev/runtimevar/constantvar" // constant:// URLs, used in tests and local setups
	_ "gocloud.dev/runtimevar/filevar"     // file:// URLs for mounted secrets
)

// MinSigningKeyLength is the shortest accepted HMAC-SHA256 key, in bytes.
const MinSigningKeyLength = 32

// SigningKey is the process-wide HMAC secret for bearer tokens. It is read once at
// startup and never reassigned.
type SigningKey []byte

// NewSigningKey resolves the signing key from configuration. secretKey.bearerUrl is a
// gocloud runtimevar URL and wins over the inline secretKey.bearer value. A missing or
// short key is an error, so the application refuses to start without a trust anchor.
func NewSigningKey(ctx context.Context, cfg *config.Config) (SigningKey, error) {
	raw := cfg.SecretKey.Bearer
	if url := strings.TrimSpace(cfg.SecretKey.BearerURL); url != "" {
		loaded, err := loadSigningKey(ctx, url)
		if err != nil {
			return nil, err
		}
		raw = loaded
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("bearer signing key must be provided")
	}
	if len(raw) < MinSigningKeyLength {
		return nil, errors.Errorf("bearer signing key must be at least %d bytes", MinSigningKeyLength)
	}

	return SigningKey(raw), nil
}

func loadSigningKey(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	variable, err := runtimevar.OpenVariable(ctx, url)
	if err != nil {
		return "", errors.Wrap(err, "failed to open signing key variable")
	}
	defer variable.Close()

	snapshot, err := variable.Latest(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to read signing key variable")
	}

	switch value := snapshot.Value.(type) {
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	default:
		return "", errors.Errorf("signing key variable has unsupported type %T, use decoder=string or decoder=bytes", value)
	}
}
