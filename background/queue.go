package background

import (
	"context"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TaskGenerateReport  = "generate_report"
	TaskLogOverdueTasks = "log_overdue_tasks"
)

// Queue sends jobs to the background worker
type Queue struct {
	server *machinery.Server
}

func NewQueue(server *machinery.Server) *Queue {
	return &Queue{server: server}
}

// EnqueueReport asks the worker to generate a pending report
func (q *Queue) EnqueueReport(ctx context.Context, id primitive.ObjectID) error {
	_, err := q.server.SendTaskWithContext(ctx, reportSignature(id))
	return err
}

// reportSignature runs a generation once. A failed report stays failed until
// somebody asks for it again.
func reportSignature(id primitive.ObjectID) *tasks.Signature {
	return &tasks.Signature{
		Name: TaskGenerateReport,
		Args: []tasks.Arg{
			{Type: "string", Value: id.Hex()},
		},
	}
}
