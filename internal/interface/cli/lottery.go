// Package cli implements the command-line front-ends of the school tools.
// Runners take their arguments, output streams and logger explicitly and
// return a process exit code.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alem-hub/school-tools/internal/application/command"
	"github.com/alem-hub/school-tools/pkg/logger"
)

// Process exit codes returned by the runners.
const (
	// ExitSuccess - the run completed, including a lottery run with no matches.
	ExitSuccess = 0
	// ExitFailure - wrong lottery arity, unparsable input or a failed operation.
	ExitFailure = 1
	// ExitUsage - malformed tracker flags.
	ExitUsage = 2
)

// LotteryUsage is printed when the comparator gets the wrong number of arguments.
const LotteryUsage = "Usage: lottery <ticket_numbers> <winning_numbers>"

// RunLottery compares a ticket with the winning numbers.
// args excludes the program name.
func RunLottery(ctx context.Context, args []string, stdout io.Writer, log *logger.Logger) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, LotteryUsage)
		return ExitFailure
	}

	h := command.NewCompareTicketHandler(log)
	result, err := h.Handle(ctx, command.CompareTicketCommand{
		Ticket:  args[0],
		Winning: args[1],
	})
	if err != nil {
		return ExitFailure
	}

	fmt.Fprintln(stdout, result.Summary())
	return ExitSuccess
}
