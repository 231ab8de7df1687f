package specialist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
)

// renderContext formats the task context as a plain-text preamble.
func renderContext(tc model.TaskContext) string {
	var sb strings.Builder
	rep := tc.Representation

	sb.WriteString("[SESSION CONTEXT]\n")
	writeLine(&sb, "Country", rep.Country)
	writeLine(&sb, "Council", rep.Council)
	writeLine(&sb, "Committee", rep.Committee)
	writeLine(&sb, "Topic", rep.Topic)
	writeLine(&sb, "Phase", string(tc.Phase))

	if len(tc.PhaseData) > 0 {
		keys := make([]string, 0, len(tc.PhaseData))
		for k := range tc.PhaseData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("Phase data:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", k, tc.PhaseData[k]))
		}
	}

	docs := tc.Documents
	if len(docs) > MaxDocumentsInPrompt {
		docs = docs[len(docs)-MaxDocumentsInPrompt:]
	}
	if len(docs) > 0 {
		sb.WriteString("Attached documents:\n")
		for _, d := range docs {
			sb.WriteString(fmt.Sprintf("- %s (%s)", d.Filename, d.FileType))
			if d.Summary != "" {
				sb.WriteString(": " + d.Summary)
			}
			sb.WriteString("\n")
		}
	}

	if len(tc.Upstream) > 0 {
		sb.WriteString("Findings from earlier specialists:\n")
		for _, u := range tc.Upstream {
			sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", u.AgentType, u.TaskID, strings.TrimSpace(u.Content)))
			for _, src := range u.Sources {
				sb.WriteString("  Source: " + src + "\n")
			}
		}
	}

	msgs := tc.RecentMessages
	if len(msgs) > MaxContextMessages {
		msgs = msgs[len(msgs)-MaxContextMessages:]
	}
	if len(msgs) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, m := range msgs {
			who := string(m.Role)
			if m.AgentType != "" {
				who = string(m.AgentType)
			}
			sb.WriteString(fmt.Sprintf("%s: %s\n", who, m.Content))
		}
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(label + ": " + value + "\n")
}

// excerpt returns the first line of text, cut to at most n runes.
func excerpt(text string, n int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	r := []rune(line)
	if len(r) <= n {
		return line
	}
	return string(r[:n]) + "..."
}

// extractSources pulls "Source:" lines out of an answer.
func extractSources(text string) []string {
	var sources []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "Source:"); ok {
			if s := strings.TrimSpace(after); s != "" {
				sources = append(sources, s)
			}
		}
	}
	return sources
}
