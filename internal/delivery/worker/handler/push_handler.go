package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/constants"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler delivers mail events pushed by Pub/Sub.
//
// Pub/Sub redelivers anything not answered with 2xx, so messages that can never
// be delivered are acknowledged and dropped while transient failures answer 503.
type PushHandler struct {
	verify TokenVerifier
	logger *slog.Logger
	mailer service.Mailer
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger: params.Logger,
		mailer: params.Mailer,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// WithTokenVerifier replaces the push token check. A nil verifier disables it.
func (h *PushHandler) WithTokenVerifier(verify TokenVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return h.drop(c, "Failed to parse push message", err)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return h.drop(c, "Failed to decode message data", err)
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return h.drop(c, "Failed to parse mail event", err)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	event.RequestID = requestID

	if err := h.mailer.Send(ctx, &event); err != nil {
		if errors.Is(err, service.ErrUndeliverableMail) {
			reqLogger.Error("[Worker] Dropping undeliverable mail",
				slog.String("message_id", pushMsg.Message.MessageID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to send mail",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Mail sent",
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) drop(c echo.Context, msg string, err error) error {
	h.logger.Error("[Worker] "+msg, slog.Any("error", err))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// request context, and finally generates one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
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

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
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
