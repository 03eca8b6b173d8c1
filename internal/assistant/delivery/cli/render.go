package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/conversation"
	"personal-assistant/internal/plugin"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderHelp(out io.Writer) {
	fmt.Fprintln(out, "Available Commands")
	w := newTable(out)
	fmt.Fprintln(w, "COMMAND\tDESCRIPTION")
	for _, row := range builtinHelp {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	w.Flush()
	fmt.Fprintln(out, "Anything else is sent to the assistant.")
	fmt.Fprintln(out)
}

func renderStatus(out io.Writer, st assistant.Status, voice bool) {
	last := "None"
	if st.LastInteraction != nil {
		last = st.LastInteraction.Format(time.DateTime)
	}

	fmt.Fprintln(out, "Assistant Status")
	w := newTable(out)
	fmt.Fprintf(w, "Name:\t%s\n", st.Name)
	fmt.Fprintf(w, "Plugins Loaded:\t%d (%s)\n", st.PluginsLoaded, strings.Join(st.Plugins, ", "))
	fmt.Fprintf(w, "Conversation Available:\t%t\n", st.ConversationAvailable)
	fmt.Fprintf(w, "Conversation Active:\t%t\n", st.ConversationActive)
	fmt.Fprintf(w, "History:\t%d/%d\n", st.HistorySize, st.HistoryLimit)
	fmt.Fprintf(w, "Last Interaction:\t%s\n", last)
	fmt.Fprintf(w, "Voice Enabled:\t%t\n", voice)
	w.Flush()
	fmt.Fprintln(out)
}

func renderCapabilities(out io.Writer, descs []plugin.Descriptor) {
	fmt.Fprintln(out, "Assistant Capabilities")
	w := newTable(out)
	fmt.Fprintln(w, "PLUGIN\tVERSION\tDESCRIPTION")
	if len(descs) == 0 {
		fmt.Fprintf(w, "%s\t\t\n", MsgNoPlugins)
	}
	for _, d := range descs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Version, d.Description)
	}
	w.Flush()

	for _, d := range descs {
		if len(d.Commands) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s commands:\n", d.Name)
		for _, c := range d.Commands {
			fmt.Fprintf(out, "  • %s\n", c)
		}
	}
	fmt.Fprintln(out)
}

func renderHistory(out io.Writer, exchanges []conversation.Exchange) {
	if len(exchanges) == 0 {
		fmt.Fprintln(out, MsgNoHistory)
		fmt.Fprintln(out)
		return
	}

	w := newTable(out)
	fmt.Fprintln(w, "TIME\tYOU\tASSISTANT")
	for _, ex := range exchanges {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ex.Timestamp.Format(time.TimeOnly), oneLine(ex.Input), oneLine(ex.Response))
	}
	w.Flush()
	fmt.Fprintln(out)
}

// oneLine flattens multi-line replies and shortens them for table output.
func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	const max = 60
	if r := []rune(s); len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}
