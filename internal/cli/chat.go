package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// cmdChat runs the interactive wellness conversation. Each turn is one
// round trip; a failed turn is reported in-line and the conversation
// continues, mirroring the mobile chat screen's behaviour.
func (a *App) cmdChat(ctx context.Context, _ []string) error {
	fmt.Fprintln(a.out, "AI Wellness Coach — here to help, 24/7. Type \"exit\" to leave.")

	sc := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "you> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply, err := a.assistant.Send(ctx, line)
		if err != nil {
			fmt.Fprintf(a.out, "coach> Sorry, I couldn't connect to the server. Please try again. (%s)\n", renderError(err))
			continue
		}
		fmt.Fprintf(a.out, "coach> %s\n", reply)
	}
	fmt.Fprintln(a.out, "Take care of yourself!")
	return sc.Err()
}
