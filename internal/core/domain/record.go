package domain

// RecordMessage is the message text of every emitted record.
const RecordMessage = "ECS Task stopped with error"

// Record is the normalized output emitted once per successful invocation.
type Record struct {
	Cluster      string            `json:"ecs_cluster"`
	Service      string            `json:"ecs_service"`
	TaskID       string            `json:"ecs_task_id"`
	ErrorCode    string            `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Tags         map[string]string `json:"tags"`
}

// NewRecord assembles a Record from the event detail, its classification and the task definition tags.
func NewRecord(detail TaskStateChange, c Classification, tags []Tag) Record {
	return Record{
		Cluster:      ShortClusterName(detail.ClusterArn),
		Service:      ShortServiceName(detail.Group),
		TaskID:       ShortTaskID(detail.TaskArn),
		ErrorCode:    c.Code,
		ErrorMessage: c.Message,
		Tags:         FlattenTags(tags),
	}
}
