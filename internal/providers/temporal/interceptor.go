package temporal

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
)

// NewSentryActivityInterceptor gives every activity execution its own sentry hub, so errors
// logged by one account sync are not tagged with another's identity
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &sentryWorkerInterceptor{}
}

type sentryWorkerInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (s *sentryWorkerInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	i := &sentryActivityInterceptor{}
	i.Next = next
	return i
}

type sentryActivityInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

func (s *sentryActivityInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()
	if activity.IsActivity(ctx) {
		info := activity.GetInfo(ctx)
		tags := map[string]string{
			"activity_type": info.ActivityType.Name,
			"workflow_id":   info.WorkflowExecution.ID,
			"task_queue":    info.TaskQueue,
			"attempt":       strconv.Itoa(int(info.Attempt)),
		}
		if info.WorkflowType != nil {
			tags["workflow_type"] = info.WorkflowType.Name
		}
		hub.ConfigureScope(func(scope *sentry.Scope) { scope.SetTags(tags) })
	}

	return s.Next.ExecuteActivity(sentry.SetHubOnContext(ctx, hub), in)
}
