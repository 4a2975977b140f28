package actions

import (
	"context"

	log "github.com/sirupsen/logrus"
	q "github.com/teamkeel/graphgate/query"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/teamkeel/graphgate/runtime/actions")

// Options bound the pages a client may request.
type Options struct {
	DefaultSize  int
	MaxSize      int
	WindowRadius int
}

func DefaultOptions() Options {
	return Options{
		DefaultSize:  50,
		MaxSize:      100,
		WindowRadius: q.DefaultWindowRadius,
	}
}

// Paginate resolves a connection field: the relay args are translated into a
// backend page request, the page is fetched and the connection is built from
// it. Page cursors are attached whenever the backend reported a total.
//
// Loaders that page by req.Offset report the offset they used and the
// cursors follow it. Backend errors are returned unchanged.
func Paginate[T any](ctx context.Context, args map[string]any, wantTotalCount bool, opts Options, fetch q.FetchFunc[T]) (q.Connection[T], error) {
	ctx, span := tracer.Start(ctx, "Paginate")
	defer span.End()

	page, err := ParsePage(args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return q.Connection[T]{}, err
	}
	page.WantTotalCount = wantTotalCount

	req, err := q.TranslateArgs(page, opts.DefaultSize, opts.MaxSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return q.Connection[T]{}, err
	}

	span.SetAttributes(
		attribute.Int("page.number", req.Page),
		attribute.Int("page.size", req.Size),
		attribute.Bool("page.total_count", req.WantTotalCount),
	)

	result, err := fetch(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return q.Connection[T]{}, err
	}

	conn := q.BuildConnectionFrom(result, req)

	total, known := result.TotalCount.Get()
	if known {
		current := result.Start(req)/req.Size + 1
		cursors, err := q.PageCursorWindow{Radius: opts.WindowRadius}.Build(current, req.Size, total)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return q.Connection[T]{}, err
		}
		conn = conn.WithPageCursors(cursors)
		span.SetAttributes(attribute.Int("page.total", total))
	} else if req.WantTotalCount {
		log.WithFields(log.Fields{
			"page": req.Page,
			"size": req.Size,
		}).Warn("total count requested but the backend did not report one")
	}

	log.WithFields(log.Fields{
		"page":  req.Page,
		"size":  req.Size,
		"items": len(result.Items),
	}).Debug("paginated")

	return conn, nil
}

// PaginateIDs resolves a connection over the entities referenced by ids. When
// there are no ids the empty connection is returned without calling fetch.
func PaginateIDs[T any](ctx context.Context, ids []string, args map[string]any, wantTotalCount bool, opts Options, fetch func(ctx context.Context, ids []string, req q.PageRequest) (q.FetchResult[T], error)) (q.Connection[T], error) {
	if len(ids) == 0 {
		return q.EmptyConnection[T](), nil
	}

	return Paginate(ctx, args, wantTotalCount, opts, func(ctx context.Context, req q.PageRequest) (q.FetchResult[T], error) {
		return fetch(ctx, ids, req)
	})
}
