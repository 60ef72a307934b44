// Package idempotency deduplicates mutating requests. A request carrying a
// client-supplied key executes at most once per (key, method, path, actor)
// identity: concurrent duplicates lose the insert race on the record
// store's uniqueness constraint, replays of a completed operation get the
// stored response verbatim, and key reuse with a different payload is
// rejected. Requests without a key bypass the engine untouched.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kprajapati/tracker/clock"
	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/idempotencykeys"
)

// HeaderKey is the request header the transport layer reads the
// idempotency key from.
const HeaderKey = "Idempotency-Key"

// DefaultRetention is how long a record is kept before its identity may
// be reused.
const DefaultRetention = 24 * time.Hour

// Request is the metadata of one inbound mutating request.
type Request struct {
	Key     string
	Method  string
	Path    string
	ActorID string
	Payload model.Payload
}

// Response is the handler result the engine persists and replays.
type Response struct {
	Status int32
	Body   json.RawMessage
}

// Handler runs the business logic guarded by the engine.
type Handler func(ctx context.Context) (Response, error)

// Engine fronts all mutating request handling. Its only side effects are
// on the record store; it never inspects business data.
type Engine struct {
	records   idempotencykeys.Querier
	clock     clock.Clock
	retention time.Duration
	logger    *slog.Logger
}

func NewEngine(records idempotencykeys.Querier, clk clock.Clock, retention time.Duration, logger *slog.Logger) *Engine {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Engine{
		records:   records,
		clock:     clk,
		retention: retention,
		logger:    logger,
	}
}

// mutatingMethods is the set of verbs that participate in deduplication.
var mutatingMethods = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// Execute runs next under the deduplication guarantee. Requests without a
// key or with a non-mutating method run next directly.
func (e *Engine) Execute(ctx context.Context, req Request, next Handler) (Response, error) {
	if req.Key == "" || !mutatingMethods[req.Method] {
		return next(ctx)
	}

	actorID := req.ActorID
	if actorID == "" {
		actorID = model.AnonymousActorID
	}
	identity := idempotencykeys.Identity{
		Key:     req.Key,
		Method:  req.Method,
		Path:    req.Path,
		ActorID: actorID,
	}

	requestHash, err := HashPayload(req.Payload)
	if err != nil {
		return Response{}, errs.Wrap(errs.InvalidArgument, "request payload is not hashable", err)
	}

	now := e.clock.Now()
	if err := e.records.PurgeExpired(ctx, identity, now); err != nil {
		return Response{}, errs.Wrap(errs.Unavailable, "failed to purge expired idempotency record", err)
	}

	insertErr := e.records.Insert(ctx, idempotencykeys.InsertParams{
		Identity:    identity,
		RequestHash: requestHash,
		ExpiresAt:   now.Add(e.retention),
	})
	if insertErr != nil {
		var pgErr *pgconn.PgError
		if errors.As(insertErr, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return e.resolveExisting(ctx, identity, requestHash)
		}
		return Response{}, errs.Wrap(errs.Unavailable, "failed to record idempotency key", insertErr)
	}

	response, handlerErr := next(ctx)
	if handlerErr != nil {
		// Free the identity so the client's retry is treated as fresh.
		if deleteErr := e.records.Delete(ctx, identity); deleteErr != nil {
			e.logger.Error("failed to release idempotency record after handler failure",
				slog.String("key", identity.Key),
				slog.Any("error", deleteErr))
		}
		return Response{}, handlerErr
	}

	if err := e.records.SaveResponse(ctx, identity, response.Status, response.Body); err != nil {
		return Response{}, errs.Wrap(errs.Unavailable, "failed to store idempotent response", err)
	}
	return response, nil
}

// resolveExisting handles an identity that lost the insert race or is a
// straight retry. Completed records replay; anything else is a conflict.
func (e *Engine) resolveExisting(ctx context.Context, identity idempotencykeys.Identity, requestHash string) (Response, error) {
	record, err := e.records.Find(ctx, identity)
	if err != nil {
		return Response{}, errs.Wrap(errs.Unavailable, "failed to load idempotency record", err)
	}
	if record == nil {
		// The winning request failed and released the identity between our
		// insert and this lookup. The client may retry.
		return Response{}, errs.New(errs.Aborted, "idempotent request is already in progress")
	}

	if record.RequestHash != requestHash {
		return Response{}, errs.New(errs.Conflict, "idempotency key reused with a different payload")
	}
	if record.InFlight() {
		return Response{}, errs.New(errs.Aborted, "idempotent request is already in progress")
	}

	e.logger.Info("replaying stored idempotent response",
		slog.String("key", identity.Key),
		slog.String("method", identity.Method),
		slog.String("path", identity.Path))
	return Response{Status: *record.ResponseStatus, Body: record.ResponseBody}, nil
}

// PurgeExpired bulk-deletes records past retention. The engine already
// purges lazily per identity; this is for operational cleanup.
func (e *Engine) PurgeExpired(ctx context.Context) (int64, error) {
	return e.records.PurgeAllExpired(ctx, e.clock.Now())
}
