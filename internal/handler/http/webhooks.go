package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/everhold/everhold/internal/app"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
	"github.com/everhold/everhold/models"
)

const (
	webhookIDHeader        = "svix-id"
	webhookTimestampHeader = "svix-timestamp"
	webhookSignatureHeader = "svix-signature"

	// webhookTolerance bounds how far a delivery's timestamp may drift
	// from server time before the delivery is rejected as a replay.
	webhookTolerance = 5 * time.Minute

	// maxWebhookBody caps the accepted payload size.
	maxWebhookBody = 1 << 20
)

// handleWebhook receives identity-provider events. The delivery is
// authenticated first: signature and timestamp failures are rejected with
// 400 before the payload is even parsed.
func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		log.Err(err).Msg("reading webhook body failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrBadWebhookSignature.Error()}, http.StatusBadRequest)
		return
	}

	if err := h.verifyWebhook(r, body); err != nil {
		log.Err(err).Msg("webhook verification failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrBadWebhookSignature.Error()}, http.StatusBadRequest)
		return
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Err(err).Msg("invalid webhook payload")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidWebhookPayload}, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.SyncUser(ctx, event); err != nil {
		log.Err(err).Str("event", event.Type).Msg("identity event processing failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PageResponse{Success: true}, http.StatusOK)
}

// verifyWebhook checks the delivery headers against the configured signing
// secret: the timestamp must be within tolerance and at least one signature
// entry must match the HMAC of "{id}.{timestamp}.{body}".
func (h *Handler) verifyWebhook(r *http.Request, body []byte) error {
	msgID := r.Header.Get(webhookIDHeader)
	timestamp := r.Header.Get(webhookTimestampHeader)
	signature := r.Header.Get(webhookSignatureHeader)
	if msgID == "" || timestamp == "" || signature == "" {
		return ErrBadWebhookSignature
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrBadWebhookSignature
	}
	if drift := time.Since(time.Unix(unix, 0)); drift > webhookTolerance || drift < -webhookTolerance {
		return ErrBadWebhookSignature
	}

	key, err := utils.DecodeWebhookSecret(h.auth.WebhookSecret)
	if err != nil {
		return err
	}

	if !utils.VerifyWebhookSignature(key, msgID, timestamp, body, signature) {
		return ErrBadWebhookSignature
	}

	return nil
}
