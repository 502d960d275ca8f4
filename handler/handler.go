/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/suparena/billingtotal/billing"
	"github.com/suparena/billingtotal/storagemodels"
	"go.uber.org/zap"
)

// Summer produces the payment summary for one invocation.
type Summer interface {
	Sum(ctx context.Context) (*storagemodels.Summary, error)
}

// Handler is the Lambda entry point.
type Handler struct {
	summer Summer
	log    *zap.Logger
}

// New creates a Handler. A nil logger disables logging.
func New(summer Summer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{summer: summer, log: log}
}

// Handle ignores the event, sums all payments and reports the outcome as a
// status code plus a JSON-encoded message. Failures are reported in the
// response, so the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	summary, err := h.summer.Sum(ctx)
	if err != nil {
		h.log.Error("payment aggregation failed", zap.Error(err))
		return respond(http.StatusInternalServerError, fmt.Sprintf("Error: %s", err)), nil
	}

	total := billing.FormatAmount(summary.Total)
	h.log.Info("payment aggregation complete",
		zap.String("total", total),
		zap.Int64("items", summary.ItemsProcessed),
		zap.Int("pages", summary.PagesProcessed),
		zap.Duration("duration", summary.Duration()),
	)
	return respond(http.StatusOK, fmt.Sprintf("Total payment: %s", total)), nil
}

// respond builds the response; the body is the JSON encoding of message.
func respond(status int, message string) events.APIGatewayProxyResponse {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(message)

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: strings.TrimSuffix(buf.String(), "\n"),
	}
}
