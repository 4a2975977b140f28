package runtime

import (
	"context"
	"os"

	"github.com/segmentio/ksuid"
	log "github.com/sirupsen/logrus"
	"github.com/teamkeel/graphql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/teamkeel/graphgate/runtime")
var Version string

func init() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(logLevel())
}

func GetVersion() string {
	return Version
}

type Request struct {
	Query         string
	OperationName string
	Variables     map[string]any
}

// Executor runs graph requests against a schema in process.
type Executor struct {
	schema graphql.Schema
}

func NewExecutor(schema graphql.Schema) *Executor {
	return &Executor{
		schema: schema,
	}
}

// Execute runs a single request. Resolver errors are reported in the result,
// never returned.
func (e *Executor) Execute(ctx context.Context, request Request) *graphql.Result {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	requestID := ksuid.New().String()
	span.SetAttributes(
		attribute.String("runtime_version", Version),
		attribute.String("request.id", requestID),
		attribute.String("request.operation", request.OperationName),
	)

	entry := log.WithFields(log.Fields{
		"requestId": requestID,
		"operation": request.OperationName,
	})
	entry.WithField("query", request.Query).Debug("request")

	result := graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  request.Query,
		VariableValues: request.Variables,
		OperationName:  request.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		messages := make([]string, 0, len(result.Errors))
		for _, err := range result.Errors {
			messages = append(messages, err.Message)
		}
		span.SetStatus(codes.Error, messages[0])
		span.SetAttributes(attribute.StringSlice("response.errors", messages))
		entry.WithField("errors", messages).Info("response")
		return result
	}

	entry.Info("response")
	return result
}

func logLevel() log.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.ErrorLevel
	}
}
