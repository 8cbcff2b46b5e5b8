package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"webafan-portfolio/app/server/whatsapp"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitWithoutWhatsApp(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	c, rec := newJSONContext(http.MethodPost, "/api/contacts/submit",
		`{"name":"Budi","email":"budi@example.com","subject":"Hi","message":"Hello"}`)
	require.NoError(t, a.ContactSubmit(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res contactSubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, uint(7), res.ContactID)
	assert.False(t, res.WhatsappSent)
	assert.Equal(t, "Email", res.PrimaryMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSubmitWithWhatsApp(t *testing.T) {
	a, mock, _ := newTestApp(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	a.wa = whatsapp.New(srv.URL, "token", "628123456789")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()
	// 发送成功后标记 whatsapp_sent
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contacts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(http.MethodPost, "/api/contacts/submit",
		`{"name":"Budi","email":"budi@example.com","subject":"Hi","message":"Hello"}`)
	require.NoError(t, a.ContactSubmit(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res contactSubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.WhatsappSent)
	assert.Equal(t, "WhatsApp", res.PrimaryMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSubmitNotificationFailureStillAccepts(t *testing.T) {
	a, mock, _ := newTestApp(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	a.wa = whatsapp.New(srv.URL, "token", "628123456789")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	c, rec := newJSONContext(http.MethodPost, "/api/contacts/submit",
		`{"name":"Budi","email":"budi@example.com","subject":"Hi","message":"Hello"}`)
	require.NoError(t, a.ContactSubmit(c))

	// 通知失败不影响提交结果
	require.Equal(t, http.StatusOK, rec.Code)

	var res contactSubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.False(t, res.WhatsappSent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSubmitMissingFields(t *testing.T) {
	a, _, _ := newTestApp(t)

	for _, body := range []string{
		`{}`,
		`{"name":"Budi","email":"budi@example.com","subject":"Hi"}`,
		`{"name":"  ","email":"budi@example.com","subject":"Hi","message":"Hello"}`,
	} {
		c, rec := newJSONContext(http.MethodPost, "/api/contacts/submit", body)
		require.NoError(t, a.ContactSubmit(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestContactListRequiresAdmin(t *testing.T) {
	a, _, _ := newTestApp(t)

	c, rec := newJSONContext(http.MethodGet, "/api/contacts/admin", "")
	require.NoError(t, a.ContactList(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newJSONContext(http.MethodGet, "/api/contacts/admin", "")
	asUser(c)
	require.NoError(t, a.ContactList(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContactList(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(2, "Budi", "budi@example.com").
			AddRow(1, "Sari", "sari@example.com"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	c, rec := newJSONContext(http.MethodGet, "/api/contacts/admin?page=1&limit=10", "")
	asAdmin(c)
	require.NoError(t, a.ContactList(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res contactListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, int64(2), res.PageMax)
	assert.Len(t, res.List, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactResendWhatsAppUnavailable(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(3, "Budi", "budi@example.com"))

	// WhatsApp 未配置时重发返回 503
	c, rec := newJSONContext(http.MethodPost, "/api/contacts/admin/3/resend-whatsapp", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	asAdmin(c)
	require.NoError(t, a.ContactResendWhatsApp(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactStats(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	c, rec := newJSONContext(http.MethodGet, "/api/contacts/admin/stats", "")
	asAdmin(c)
	require.NoError(t, a.ContactStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res contactStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(12), res.Total)
	assert.Equal(t, int64(5), res.WhatsappSent)
	assert.Equal(t, int64(2), res.EmailSent)
	assert.Equal(t, int64(1), res.Today)
	assert.NoError(t, mock.ExpectationsWereMet())
}
