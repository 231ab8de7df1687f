package model

// Clone returns a copy of tc that shares no maps or slices with it.
func (tc TaskContext) Clone() TaskContext {
	out := tc
	out.PhaseData = CloneMap(tc.PhaseData)
	out.Metadata = CloneMap(tc.Metadata)
	out.Documents = append([]Document(nil), tc.Documents...)

	if tc.RecentMessages != nil {
		out.RecentMessages = make([]Message, len(tc.RecentMessages))
		for i, m := range tc.RecentMessages {
			m.Metadata = CloneMap(m.Metadata)
			out.RecentMessages[i] = m
		}
	}
	if tc.Upstream != nil {
		out.Upstream = make([]UpstreamResult, len(tc.Upstream))
		for i, u := range tc.Upstream {
			u.Sources = append([]string(nil), u.Sources...)
			out.Upstream[i] = u
		}
	}
	return out
}

// CloneMap copies m, descending into nested maps and slices decoded from JSON.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return CloneMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
