package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kprajapati/tracker/clock"
	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/mocks/repository/idempotency_repo"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/idempotencykeys"
)

var testLogger = slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestEngine(t *testing.T) (*Engine, *idempotency_repo.MockQuerier, *clock.Manual) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := idempotency_repo.NewMockQuerier(ctrl)
	clk := clock.NewManual(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewEngine(records, clk, DefaultRetention, testLogger), records, clk
}

func jsonPayload(s string) model.Payload {
	return model.JSONPayload(json.RawMessage(s))
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
}

func TestExecuteBypassesWithoutKey(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	calls := 0
	resp, err := engine.Execute(context.Background(), Request{
		Method:  "POST",
		Path:    "/tasks",
		ActorID: "u1",
		Payload: jsonPayload(`{"title":"x"}`),
	}, func(ctx context.Context) (Response, error) {
		calls++
		return Response{Status: 201, Body: json.RawMessage(`{"id":"t1"}`)}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int32(201), resp.Status)
}

func TestExecuteBypassesNonMutatingMethods(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	calls := 0
	_, err := engine.Execute(context.Background(), Request{
		Key:    "abc",
		Method: "GET",
		Path:   "/tasks",
	}, func(ctx context.Context) (Response, error) {
		calls++
		return Response{Status: 200}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteFirstRequest(t *testing.T) {
	engine, records, clk := newTestEngine(t)

	identity := idempotencykeys.Identity{Key: "abc", Method: "POST", Path: "/tasks", ActorID: "u1"}
	hash, err := HashPayload(jsonPayload(`{"title":"x"}`))
	require.NoError(t, err)

	now := clk.Now()
	records.EXPECT().PurgeExpired(gomock.Any(), identity, now).Return(nil)
	records.EXPECT().Insert(gomock.Any(), idempotencykeys.InsertParams{
		Identity:    identity,
		RequestHash: hash,
		ExpiresAt:   now.Add(24 * time.Hour),
	}).Return(nil)
	records.EXPECT().SaveResponse(gomock.Any(), identity, int32(201), json.RawMessage(`{"id":"t1"}`)).Return(nil)

	resp, err := engine.Execute(context.Background(), Request{
		Key:     "abc",
		Method:  "POST",
		Path:    "/tasks",
		ActorID: "u1",
		Payload: jsonPayload(`{"title":"x"}`),
	}, func(ctx context.Context) (Response, error) {
		return Response{Status: 201, Body: json.RawMessage(`{"id":"t1"}`)}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int32(201), resp.Status)
	assert.JSONEq(t, `{"id":"t1"}`, string(resp.Body))
}

func TestExecuteAnonymousActor(t *testing.T) {
	engine, records, _ := newTestEngine(t)

	records.EXPECT().PurgeExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	records.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params idempotencykeys.InsertParams) error {
			assert.Equal(t, model.AnonymousActorID, params.Identity.ActorID)
			return nil
		})
	records.EXPECT().SaveResponse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := engine.Execute(context.Background(), Request{
		Key:    "abc",
		Method: "POST",
		Path:   "/register",
	}, func(ctx context.Context) (Response, error) {
		return Response{Status: 201}, nil
	})
	require.NoError(t, err)
}

func TestExecuteHandlerFailureReleasesIdentity(t *testing.T) {
	engine, records, _ := newTestEngine(t)

	identity := idempotencykeys.Identity{Key: "abc", Method: "POST", Path: "/tasks", ActorID: "u1"}
	records.EXPECT().PurgeExpired(gomock.Any(), identity, gomock.Any()).Return(nil)
	records.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	records.EXPECT().Delete(gomock.Any(), identity).Return(nil)

	handlerErr := errors.New("boom")
	_, err := engine.Execute(context.Background(), Request{
		Key:     "abc",
		Method:  "POST",
		Path:    "/tasks",
		ActorID: "u1",
		Payload: jsonPayload(`{"title":"x"}`),
	}, func(ctx context.Context) (Response, error) {
		return Response{}, handlerErr
	})

	assert.ErrorIs(t, err, handlerErr)
}

func TestExecuteExistingRecord(t *testing.T) {
	identity := idempotencykeys.Identity{Key: "abc", Method: "POST", Path: "/tasks", ActorID: "u1"}
	sameHash, err := HashPayload(jsonPayload(`{"title":"x"}`))
	require.NoError(t, err)
	status := int32(201)

	testCases := []struct {
		name         string
		record       *model.IdempotencyRecord
		expectedCode errs.Code
		expectedBody string
	}{
		{
			name: "completed_same_hash_replays",
			record: &model.IdempotencyRecord{
				RequestHash:    sameHash,
				ResponseStatus: &status,
				ResponseBody:   json.RawMessage(`{"id":"t1"}`),
			},
			expectedBody: `{"id":"t1"}`,
		},
		{
			name: "completed_different_hash_conflicts",
			record: &model.IdempotencyRecord{
				RequestHash:    "different",
				ResponseStatus: &status,
			},
			expectedCode: errs.Conflict,
		},
		{
			name: "in_flight_same_hash_aborts",
			record: &model.IdempotencyRecord{
				RequestHash: sameHash,
			},
			expectedCode: errs.Aborted,
		},
		{
			name: "in_flight_different_hash_conflicts",
			record: &model.IdempotencyRecord{
				RequestHash: "different",
			},
			expectedCode: errs.Conflict,
		},
		{
			name:         "record_released_mid_race_aborts",
			record:       nil,
			expectedCode: errs.Aborted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine, records, _ := newTestEngine(t)
			records.EXPECT().PurgeExpired(gomock.Any(), identity, gomock.Any()).Return(nil)
			records.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueViolation())
			records.EXPECT().Find(gomock.Any(), identity).Return(tc.record, nil)

			resp, err := engine.Execute(context.Background(), Request{
				Key:     "abc",
				Method:  "POST",
				Path:    "/tasks",
				ActorID: "u1",
				Payload: jsonPayload(`{"title":"x"}`),
			}, func(ctx context.Context) (Response, error) {
				t.Fatal("handler must not run for an existing identity")
				return Response{}, nil
			})

			if tc.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, status, resp.Status)
			assert.JSONEq(t, tc.expectedBody, string(resp.Body))
		})
	}
}

func TestExecuteExpiredIdentityIsFresh(t *testing.T) {
	engine, records, clk := newTestEngine(t)

	identity := idempotencykeys.Identity{Key: "abc", Method: "POST", Path: "/tasks", ActorID: "u1"}
	clk.Advance(48 * time.Hour)

	// The purge runs against the advanced clock, then the insert succeeds
	// because the stale record is gone.
	records.EXPECT().PurgeExpired(gomock.Any(), identity, clk.Now()).Return(nil)
	records.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	records.EXPECT().SaveResponse(gomock.Any(), identity, int32(200), gomock.Any()).Return(nil)

	resp, err := engine.Execute(context.Background(), Request{
		Key:     "abc",
		Method:  "POST",
		Path:    "/tasks",
		ActorID: "u1",
		Payload: jsonPayload(`{"title":"x"}`),
	}, func(ctx context.Context) (Response, error) {
		return Response{Status: 200}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int32(200), resp.Status)
}

func TestExecuteStoreFailures(t *testing.T) {
	t.Run("purge_failure", func(t *testing.T) {
		engine, records, _ := newTestEngine(t)
		records.EXPECT().PurgeExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := engine.Execute(context.Background(), Request{
			Key: "abc", Method: "POST", Path: "/tasks", ActorID: "u1",
		}, func(ctx context.Context) (Response, error) {
			t.Fatal("handler must not run when the record store is down")
			return Response{}, nil
		})
		assert.Equal(t, errs.Unavailable, errs.CodeOf(err))
	})

	t.Run("save_response_failure", func(t *testing.T) {
		engine, records, _ := newTestEngine(t)
		records.EXPECT().PurgeExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		records.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		records.EXPECT().SaveResponse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := engine.Execute(context.Background(), Request{
			Key: "abc", Method: "POST", Path: "/tasks", ActorID: "u1",
		}, func(ctx context.Context) (Response, error) {
			return Response{Status: 201}, nil
		})
		assert.Equal(t, errs.Unavailable, errs.CodeOf(err))
	})
}

func TestPurgeExpired(t *testing.T) {
	engine, records, clk := newTestEngine(t)
	records.EXPECT().PurgeAllExpired(gomock.Any(), clk.Now()).Return(int64(3), nil)

	purged, err := engine.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
