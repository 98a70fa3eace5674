package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/consts"
)

type (
	// Confirmer approves destructive steps such as dropping existing objects.
	Confirmer interface {
		Confirm(ctx context.Context, prompt string) (bool, error)
	}

	// PromptConfirmer asks on Out and reads a single line answer from In. Only
	// the exact word "yes" (case-insensitive) approves.
	PromptConfirmer struct {
		In  io.Reader
		Out io.Writer
	}

	// Fixed always returns the same answer. It backs the --yes flag and tests.
	Fixed bool
)

// Confirm implements Confirmer
func (p *PromptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := fmt.Fprintf(p.Out, "%s Type '%s' to continue: ", prompt, consts.ConfirmationWord); err != nil {
		return false, errors.Wrap(err, "failed to write prompt")
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "failed to read confirmation")
	}

	return strings.EqualFold(strings.TrimSpace(line), consts.ConfirmationWord), nil
}

// Confirm implements Confirmer
func (f Fixed) Confirm(context.Context, string) (bool, error) {
	return bool(f), nil
}
