package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"giya-service/internal/app/models"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorded struct {
	method string
	uri    string
	header http.Header
	body   string
}

func newTestBackend(t *testing.T, status int, body string) (*Client, *[]recorded) {
	t.Helper()
	calls := &[]recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		*calls = append(*calls, recorded{method: r.Method, uri: r.URL.RequestURI(), header: r.Header.Clone(), body: string(raw)})
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api", 5*time.Second, zap.NewNop()), calls
}

func withSession(token string) context.Context {
	return models.WithSession(context.Background(), &models.Session{SessionID: "s", BackendToken: token})
}

func TestClient_BuildURL(t *testing.T) {
	c := NewClient("http://backend/api/", time.Second, zap.NewNop())

	assert.Equal(t, "http://backend/api/auth/login/", c.BuildURL("/auth/login/", nil))
	assert.Equal(t, "http://backend/api/toolkits/", c.BuildURL("/toolkits", nil))
	assert.Equal(t, "http://backend/api/toolkits/", c.BuildURL("/toolkits/", nil))
	assert.Equal(t, "http://backend/api/marketplace?category=food", c.BuildURL("/marketplace", url.Values{"category": {"food"}}))
}

func TestClient_Do(t *testing.T) {
	t.Run("session token and no-cache headers", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusOK, `{"ok":true}`)

		raw, err := client.Do(withSession("abc"), http.MethodGet, "/toolkits", nil, nil, "")
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(raw))

		require.Len(t, *calls, 1)
		call := (*calls)[0]
		assert.Equal(t, "/api/toolkits/", call.uri)
		assert.Equal(t, "Token abc", call.header.Get("Authorization"))
		assert.Equal(t, "no-store", call.header.Get("Cache-Control"))
		assert.Equal(t, "no-cache", call.header.Get("Pragma"))
	})

	t.Run("explicit token wins over session", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusOK, `{}`)
		ctx := WithToken(withSession("session-token"), "fresh")

		_, err := client.Do(ctx, http.MethodGet, "/users/4/", nil, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "Token fresh", (*calls)[0].header.Get("Authorization"))
	})

	t.Run("auth endpoints never carry a token", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusOK, `{}`)

		_, err := client.Do(withSession("abc"), http.MethodPost, "/auth/register", nil, []byte(`{}`), "application/json")
		require.NoError(t, err)
		assert.Empty(t, (*calls)[0].header.Get("Authorization"))
		assert.Equal(t, "/api/auth/register/", (*calls)[0].uri)
	})

	t.Run("no content becomes an empty object", func(t *testing.T) {
		client, _ := newTestBackend(t, http.StatusNoContent, "")

		raw, err := client.Do(context.Background(), http.MethodDelete, "/users/professionals/schedules/3", nil, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "{}", string(raw))
	})

	t.Run("client errors keep their status and message", func(t *testing.T) {
		client, _ := newTestBackend(t, http.StatusBadRequest, `{"email":["user with this email already exists."]}`)

		_, err := client.Do(context.Background(), http.MethodPost, "/auth/register", nil, nil, "")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "email: user with this email already exists.", customErr.ClientMessage)
	})

	t.Run("server errors become bad gateway", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusInternalServerError, `<html>oops</html>`)

		_, err := client.Do(context.Background(), http.MethodGet, "/toolkits", nil, nil, "")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Len(t, *calls, 1)
	})

	t.Run("unreachable backend is bad gateway", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

		_, err := client.Do(context.Background(), http.MethodGet, "/toolkits", nil, nil, "")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid token.", ErrorMessage([]byte(`{"detail":"Invalid token."}`)))
	assert.Equal(t, "nope", ErrorMessage([]byte(`{"message":"nope"}`)))
	assert.Equal(t, "price: A valid number is required.", ErrorMessage([]byte(`{"price":["A valid number is required."]}`)))
	assert.Empty(t, ErrorMessage([]byte(`not json`)))
}

func TestAppointmentsBackend(t *testing.T) {
	t.Run("list parses and keeps the filter in the query", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusOK, `{
			"count": 1, "next": null, "previous": null,
			"results": [{
				"id": 5,
				"carer": {"id": 2, "user": {"id": 8, "email": "c@giya.test"}},
				"professional": {"id": 3, "user": {"id": 9, "email": "p@giya.test"}, "profession": "counselor"},
				"schedule": {"id": 12, "day_of_week": 0, "day_of_week_display": "Monday", "start_time": "09:00:00", "end_time": "10:00:00", "professional": 3},
				"appointment_time": "2026-03-02T09:00:00Z",
				"status": "pending",
				"call_code": "xyz"
			}]
		}`)

		page, err := NewAppointmentsBackend(client).List(withSession("t"), 2, 0)
		require.NoError(t, err)
		assert.Equal(t, "/api/appointments?carer_id=2", (*calls)[0].uri)
		require.Len(t, page.Results, 1)
		assert.Equal(t, schemas.AppointmentStatus("pending"), page.Results[0].Status)
		assert.Equal(t, "09:00:00", page.Results[0].Schedule.StartTime.String())
	})

	t.Run("appointment without status is a schema mismatch", func(t *testing.T) {
		client, _ := newTestBackend(t, http.StatusOK, `{"id": 5, "carer": {"id": 1}, "professional": {"id": 1, "profession": "counselor"}, "schedule": {"id": 1}, "appointment_time": "2026-03-02T09:00:00Z"}`)

		_, err := NewAppointmentsBackend(client).Cancel(context.Background(), 5)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("available timeslots", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusOK, `[{"dr@giya.test": {"2026-03-02": [{"schedule_id": 4, "start_time": "09:00:00", "end_time": "10:00:00"}]}}]`)

		entries, err := NewAppointmentsBackend(client).AvailableTimeslots(context.Background(), 3, "2026-03-02", "")
		require.NoError(t, err)
		assert.Equal(t, "/api/appointments/available-timeslots?professional_id=3&start_date=2026-03-02", (*calls)[0].uri)
		slots, ok := schemas.ForEmail(entries, "dr@giya.test")
		require.True(t, ok)
		assert.Equal(t, 4, slots["2026-03-02"][0].ScheduleID.Int())
	})

	t.Run("counseling token", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusOK, `{"token": "room-jwt"}`)

		token, err := NewAppointmentsBackend(client).CounselingToken(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "room-jwt", token)
		assert.Equal(t, "/api/appointments/get-appointment-token/?code=abc", (*calls)[0].uri)
	})
}

func TestSchedulesBackend(t *testing.T) {
	client, calls := newTestBackend(t, http.StatusCreated, `{"id": 99}`)
	start, _ := schemas.ParseClock("09:00:00")
	end, _ := schemas.ParseClock("10:00:00")

	err := NewSchedulesBackend(client).Create(withSession("t"), &schemas.SchedulePayload{DayOfWeek: 0, StartTime: start, EndTime: end})
	require.NoError(t, err)
	assert.Equal(t, "/api/users/professionals/schedules/", (*calls)[0].uri)
	assert.JSONEq(t, `{"day_of_week":0,"start_time":"09:00:00","end_time":"10:00:00"}`, (*calls)[0].body)
}

func TestMarketplaceBackend(t *testing.T) {
	t.Run("report payload omits a missing reporter", func(t *testing.T) {
		client, calls := newTestBackend(t, http.StatusCreated, `{}`)

		err := NewMarketplaceBackend(client).Report(withSession("t"), 7, &schemas.ReportPayload{ReportedItem: 7, Reason: "spam"})
		require.NoError(t, err)
		assert.Equal(t, "/api/marketplace/7/report_item/", (*calls)[0].uri)
		assert.JSONEq(t, `{"reported_item":7,"reason":"spam"}`, (*calls)[0].body)
	})

	t.Run("categories", func(t *testing.T) {
		client, _ := newTestBackend(t, http.StatusOK, `[{"name":"Food","value":"food"}]`)

		options, err := NewMarketplaceBackend(client).Categories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []schemas.Option{{Name: "Food", Value: "food"}}, options)
	})

	t.Run("price as string", func(t *testing.T) {
		client, _ := newTestBackend(t, http.StatusOK, `{"id": 7, "name": "Tea", "price": "12.50", "created_by": {"id": 2, "user": {"id": 8}}}`)

		product, err := NewMarketplaceBackend(client).Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, schemas.FlexFloat(12.5), product.Price)
		assert.True(t, product.OwnedBy(2))
	})
}

func TestUsersBackend(t *testing.T) {
	client, calls := newTestBackend(t, http.StatusOK, `{
		"id": 8, "email": "c@giya.test", "first_name": "Ana", "last_name": "Cruz", "is_staff": false,
		"carer": {"id": 2, "favorite_items": [{"id": 7, "name": "Tea", "price": 3, "created_by": {"id": 5, "user": {"id": 11}}}]}
	}`)
	users := NewUsersBackend(client)

	user, raw, err := users.Get(withSession("t"), 8)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, 2, user.CarerID.Int())
	assert.True(t, user.FavoriteItems.Contains(7))
	assert.Equal(t, "/api/users/8/", (*calls)[0].uri)

	favorites, err := users.Favorites(withSession("t"), 8)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Tea", favorites[0].Name)
}
