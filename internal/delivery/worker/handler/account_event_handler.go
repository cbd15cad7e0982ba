package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"arena/config"
	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/constants"
	"arena/internal/domain/service"
	"arena/internal/errors"
	"arena/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushVerifier checks the OIDC token Pub/Sub attaches to push requests.
type PushVerifier func(ctx context.Context, token, audience string) error

// AccountEventHandler receives account events delivered by a Pub/Sub push
// subscription and records them in the audit log.
type AccountEventHandler struct {
	verify PushVerifier
	logger *slog.Logger
}

// AccountEventHandlerParams holds dependencies for the AccountEventHandler
type AccountEventHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Verifier PushVerifier `optional:"true"`
}

// NewAccountEventHandler creates a new account event push handler
func NewAccountEventHandler(params AccountEventHandlerParams) *AccountEventHandler {
	verify := params.Verifier
	if verify == nil && requiresPushAuth(params.Config) {
		verify = VerifyGoogleIDToken
	}

	return &AccountEventHandler{
		verify: verify,
		logger: params.Logger,
	}
}

// Only Google deliveries outside local development carry a verifiable token.
func requiresPushAuth(cfg *config.Config) bool {
	return cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvLocal
}

// HandlePush handles one push delivery. A 2xx response acks the message;
// anything else makes Pub/Sub redeliver it.
func (h *AccountEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verifyRequest(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AccountEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse account event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	switch event.Type {
	case constants.EventTypeUserRegistered:
		reqLogger.Info("[Worker] Account registered",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Int64("user_id", event.UserID),
			slog.String("username", event.Username),
			slog.Time("occurred_at", event.OccurredAt),
		)
	default:
		// Redelivery would not help, so unknown types are acked.
		reqLogger.Warn("[Worker] Ignoring unknown account event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("type", event.Type),
		)
	}

	return c.NoContent(http.StatusOK)
}

func (h *AccountEventHandler) verifyRequest(req *http.Request) error {
	const bearerPrefix = "Bearer "

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL configured on the subscription.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	return h.verify(req.Context(), strings.TrimPrefix(authHeader, bearerPrefix), audience)
}

// VerifyGoogleIDToken validates a Google-signed ID token for the given audience.
func VerifyGoogleIDToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// extractRequestID prefers message attributes, then the event body, then the
// X-Request-Id set by the request id middleware.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.AccountEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
