// Package console drives a kiosk session from a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/linnemanlabs/guardian/internal/kiosk"
)

// Kiosk is the subset of kiosk.Service the console drives.
type Kiosk interface {
	Start(ctx context.Context) (*kiosk.Record, error)
	View(r *kiosk.Record) kiosk.View
	Act(ctx context.Context, id string, a kiosk.Action) (*kiosk.ActResult, error)
	CheckIn(ctx context.Context, id string) (string, error)
	End(ctx context.Context, id string) error
}

const rule = "----------------------------------------"

// Run starts a session and processes one command per input line until the
// user quits, input ends or ctx is canceled. Quitting and EOF return nil.
func Run(ctx context.Context, svc Kiosk, in io.Reader, out io.Writer) error {
	rec, err := svc.Start(ctx)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	id := rec.ID
	defer func() { _ = svc.End(context.WithoutCancel(ctx), id) }()

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	view := svc.View(rec)
	for {
		render(out, view)
		fmt.Fprint(out, "> ")

		if err := ctx.Err(); err != nil {
			fmt.Fprintln(out)
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-readErr
			}
			line = strings.ToLower(strings.TrimSpace(l))
		}

		if line == "q" {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}

		if view.State == kiosk.StateHome && line == "2" {
			outcome, err := svc.CheckIn(ctx, id)
			if err != nil {
				return fmt.Errorf("check in: %w", err)
			}
			fmt.Fprintln(out, checkInMessage(outcome))
			continue
		}

		a, ok := parse(view, line)
		if !ok {
			fmt.Fprintf(out, "Unrecognised input %q. %s\n", line, hint(view.State))
			continue
		}
		res, err := svc.Act(ctx, id, a)
		if err != nil {
			return fmt.Errorf("act %s: %w", a.Kind, err)
		}
		view = res.View
	}
}

// readLines feeds lines from in to the returned channel until EOF, a read
// error or done is closed. The channel is closed when reading stops, after
// the scanner error (nil on EOF) is sent. A reader blocked in Read stays
// blocked until in delivers data or is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func checkInMessage(outcome string) string {
	switch outcome {
	case kiosk.CheckInSent:
		return "Check-in sent. Your family has been told you are safe."
	case kiosk.CheckInNotifyFailed:
		return "Check-in recorded, but the message to your family could not be sent. Please try again or call them."
	default:
		return "Check-in recorded here. No family contact is set up on this kiosk."
	}
}

// parse maps an input line to an action for the current screen.
func parse(v kiosk.View, line string) (kiosk.Action, bool) {
	switch v.State {
	case kiosk.StateHome:
		if line == "1" {
			return kiosk.Action{Kind: kiosk.ActionRequestHelp}, true
		}
	case kiosk.StateSymptomSelect:
		if line == "h" {
			return kiosk.Action{Kind: kiosk.ActionGoHome}, true
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return kiosk.Action{}, false
		}
		labels := pickerLabels(v.Picker)
		if n < 1 || n > len(labels) {
			return kiosk.Action{}, false
		}
		return kiosk.Action{Kind: kiosk.ActionSelectSymptom, Symptom: labels[n-1]}, true
	case kiosk.StateResult:
		switch line {
		case "r":
			return kiosk.Action{Kind: kiosk.ActionReselect}, true
		case "h":
			return kiosk.Action{Kind: kiosk.ActionGoHome}, true
		}
	}
	return kiosk.Action{}, false
}

func hint(st kiosk.State) string {
	switch st {
	case kiosk.StateHome:
		return "Enter 1 for help, 2 to check in, q to quit."
	case kiosk.StateSymptomSelect:
		return "Enter a symptom number, h for home, q to quit."
	case kiosk.StateResult:
		return "Enter r to choose again, h for home, q to quit."
	}
	return "Enter q to quit."
}

// pickerLabels flattens the picker in display order; the numbers shown on
// screen index into this slice.
func pickerLabels(p *kiosk.PickerView) []string {
	if p == nil {
		return nil
	}
	var out []string
	for _, c := range p.Categories {
		out = append(out, c.Labels...)
	}
	return out
}

func render(w io.Writer, v kiosk.View) {
	fmt.Fprintln(w, rule)
	switch {
	case v.Home != nil:
		fmt.Fprintf(w, "%s health guide\n", v.Home.Site)
		if v.Home.Announcement != "" {
			fmt.Fprintf(w, "Notice: %s\n", v.Home.Announcement)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  1) I need help")
		if v.Home.CheckIn {
			fmt.Fprintln(w, "  2) I am safe (check in)")
		}
		fmt.Fprintln(w, "  q) quit")
	case v.Picker != nil:
		fmt.Fprintln(w, "What is the main problem?")
		n := 1
		for _, c := range v.Picker.Categories {
			fmt.Fprintf(w, "\n%s\n", c.Title)
			for _, l := range c.Labels {
				fmt.Fprintf(w, "  %2d) %s\n", n, l)
				n++
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  h) home   q) quit")
	case v.Result != nil:
		cl := v.Result.Classification
		p := v.Result.Policy
		fmt.Fprintf(w, "%s\n>> %s\n", p.Banner, p.Action)
		if cl.Symptom != "" {
			fmt.Fprintf(w, "Symptom: %s\n", cl.Symptom)
		}
		fmt.Fprintf(w, "Go to: %s\n", cl.Facility.Name)
		if cl.Facility.Address != "" {
			fmt.Fprintf(w, "       %s\n", cl.Facility.Address)
		}
		if cl.Facility.Phone != "" {
			fmt.Fprintf(w, "Phone: %s\n", cl.Facility.Phone)
		}
		if len(cl.Instructions) > 0 {
			fmt.Fprintln(w, "While you wait:")
			for i, s := range cl.Instructions {
				fmt.Fprintf(w, "  %d. %s\n", i+1, s)
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  r) choose again   h) home   q) quit")
	}
}
