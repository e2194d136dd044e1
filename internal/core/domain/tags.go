package domain

// Tag is one key/value tag attached to a task definition.
type Tag struct {
	Key   string
	Value string
}

// TaskDefinition is the subset of a task definition description the tagger uses.
type TaskDefinition struct {
	Arn      string
	Family   string
	Revision int32
	Tags     []Tag
}

// FlattenTags converts a tag list to a key/value map.
// The result is never nil; later duplicates overwrite earlier ones.
func FlattenTags(tags []Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}
