// Package command contains the write-side operations of the school tools.
// Handlers own a logger and report failures to their caller after logging.
package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/school-tools/internal/domain/lottery"
	"github.com/alem-hub/school-tools/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMPARE TICKET COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CompareTicketCommand contains the raw ticket and winning-numbers strings.
type CompareTicketCommand struct {
	// Ticket is the whitespace-separated list of ticket numbers.
	Ticket string

	// Winning is the whitespace-separated list of drawn numbers.
	Winning string
}

// CompareTicketHandler handles the CompareTicketCommand.
type CompareTicketHandler struct {
	log *logger.Logger
}

// NewCompareTicketHandler creates a new CompareTicketHandler.
func NewCompareTicketHandler(log *logger.Logger) *CompareTicketHandler {
	return &CompareTicketHandler{
		log: log.With(logger.Component("lottery")),
	}
}

// Handle parses both inputs and compares them.
// A panic while building the ticket is turned into an error.
func (h *CompareTicketHandler) Handle(ctx context.Context, cmd CompareTicketCommand) (result lottery.Result, err error) {
	if err := ctx.Err(); err != nil {
		return lottery.Result{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			h.log.Error("unexpected error", logger.Any("panic", r))
			err = fmt.Errorf("compare_ticket: unexpected error: %v", r)
		}
	}()

	ticket, err := lottery.NewTicket(cmd.Ticket, cmd.Winning)
	if err != nil {
		h.log.Error("failed to parse numbers", logger.Err(err))
		return lottery.Result{}, fmt.Errorf("compare_ticket: %w", err)
	}

	if h.log.Enabled(logger.LevelDebug) {
		h.log.Debug("ticket parsed",
			logger.String("ticket", ticket.Numbers.String()),
			logger.String("winning", ticket.Winning.String()),
		)
	}

	result = ticket.Check()
	if result.HasMatches() {
		h.log.Info("matching numbers found",
			logger.String("matches", result.Matches.String()),
			logger.Int("count", result.Count()),
		)
	} else {
		h.log.Info("no matching numbers")
	}

	return result, nil
}
