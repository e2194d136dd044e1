package domain

import "strings"

// StoppedReasonErrorWildcard matches stopped reasons that embed an ECS error
// code, e.g. "CannotPullContainerError: ..." or "ResourceInitializationError: ...".
const StoppedReasonErrorWildcard = "*Error:*"

// UpstreamFilter models the EventBridge rule that decides which task state
// changes reach the tagger. The tagger never consults it while handling an
// event; it exists so the rule can be inspected and checked locally.
type UpstreamFilter struct{}

// Matches reports whether the rule would forward an event with this detail.
func (UpstreamFilter) Matches(d TaskStateChange) bool {
	if d.DesiredStatus != TaskStatusStopped || d.LastStatus != TaskStatusStopped {
		return false
	}

	switch {
	case d.StopCode == StopCodeEssentialContainerExited && anyNonZeroExit(d.Containers):
		return true
	case d.StopCode == StopCodeTaskFailedToStart:
		return true
	default:
		return MatchWildcard(StoppedReasonErrorWildcard, d.StoppedReason)
	}
}

// MatchesEvent also checks the envelope source and detail type.
func (f UpstreamFilter) MatchesEvent(ev TaskStopEvent) bool {
	return ev.Source == EventSourceECS &&
		ev.DetailType == DetailTypeTaskStateChange &&
		f.Matches(ev.Detail)
}

// Pattern returns the EventBridge event pattern of the rule.
func (UpstreamFilter) Pattern() map[string]any {
	return map[string]any{
		"source":      []string{EventSourceECS},
		"detail-type": []string{DetailTypeTaskStateChange},
		"detail": map[string]any{
			"desiredStatus": []string{TaskStatusStopped},
			"lastStatus":    []string{TaskStatusStopped},
			"$or": []any{
				map[string]any{
					"stopCode": []string{StopCodeEssentialContainerExited},
					"containers": map[string]any{
						"exitCode": []any{map[string]any{"anything-but": 0}},
					},
				},
				map[string]any{
					"stopCode": []string{StopCodeTaskFailedToStart},
				},
				map[string]any{
					"stoppedReason": []any{map[string]any{"wildcard": StoppedReasonErrorWildcard}},
				},
			},
		},
	}
}

// anything-but 0 only matches containers that reported an exit code.
func anyNonZeroExit(containers []Container) bool {
	for _, c := range containers {
		if c.ExitCode != nil && *c.ExitCode != 0 {
			return true
		}
	}
	return false
}

// MatchWildcard reports whether s matches an EventBridge wildcard pattern,
// where '*' matches any run of characters.
func MatchWildcard(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		i := strings.Index(s, part)
		if i < 0 {
			return false
		}
		s = s[i+len(part):]
	}

	return len(s) >= len(last) && strings.HasSuffix(s, last)
}
