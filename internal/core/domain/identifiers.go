package domain

import "strings"

// ShortClusterName returns the cluster name from a cluster ARN.
func ShortClusterName(clusterArn string) string {
	return lastSegment(clusterArn, "/")
}

// ShortServiceName returns the service or family name from a task group
// such as "service:api" or "family:worker".
func ShortServiceName(group string) string {
	return lastSegment(group, ":")
}

// ShortTaskID returns the task ID from a task ARN.
func ShortTaskID(taskArn string) string {
	return lastSegment(taskArn, "/")
}

// lastSegment is idempotent: an input without sep is returned unchanged.
func lastSegment(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}
