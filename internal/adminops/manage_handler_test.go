package adminops_test

import (
	"strings"
	"testing"

	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminID(t *testing.T, email string) string {
	t.Helper()
	var admin models.Admin
	require.NoError(t, database.DB.Where("email = ?", email).First(&admin).Error)
	return admin.ID
}

func TestListAdminsStripsPasswords(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	superToken := registerAdmin(t, app, superEmail, "Boss", "superpass1")
	registerAdmin(t, app, "helper@example.com", "Helper", "helperpass1")

	resp := doJSON(t, app, "GET", "/api/admin/list", nil, superToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := string(readBody(t, resp))
	assert.Contains(t, body, "helper@example.com")
	assert.NotContains(t, strings.ToLower(body), "password")
}

func TestListAdminsRequiresSuperAdmin(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	registerAdmin(t, app, superEmail, "Boss", "superpass1")
	helperToken := registerAdmin(t, app, "helper@example.com", "Helper", "helperpass1")

	resp := doJSON(t, app, "GET", "/api/admin/list", nil, helperToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	readBody(t, resp)
}

func TestUpdateAccessLevel(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	superToken := registerAdmin(t, app, superEmail, "Boss", "superpass1")
	registerAdmin(t, app, "helper@example.com", "Helper", "helperpass1")
	id := adminID(t, "helper@example.com")

	resp := doJSON(t, app, "PUT", "/api/admin/"+id+"/access",
		fiber.Map{"access_level": "full"}, superToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "full", decodeBody(t, resp)["access_level"])

	// "super" is not grantable.
	resp = doJSON(t, app, "PUT", "/api/admin/"+id+"/access",
		fiber.Map{"access_level": "super"}, superToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)

	resp = doJSON(t, app, "PUT", "/api/admin/"+id+"/access",
		fiber.Map{"access_level": "owner"}, superToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)
}

func TestSuspendAndUnsuspend(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	superToken := registerAdmin(t, app, superEmail, "Boss", "superpass1")
	registerAdmin(t, app, "helper@example.com", "Helper", "helperpass1")
	id := adminID(t, "helper@example.com")

	resp := doJSON(t, app, "PUT", "/api/admin/"+id+"/suspend",
		fiber.Map{"suspended": true, "reason": "policy violation"}, superToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["suspended"])
	assert.Equal(t, "policy violation", body["suspension_reason"])

	// Unsuspending clears the reason.
	resp = doJSON(t, app, "PUT", "/api/admin/"+id+"/suspend",
		fiber.Map{"suspended": false}, superToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, false, body["suspended"])
	assert.Nil(t, body["suspension_reason"])
}

func TestDeleteAdmin(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	superToken := registerAdmin(t, app, superEmail, "Boss", "superpass1")
	registerAdmin(t, app, "helper@example.com", "Helper", "helperpass1")
	id := adminID(t, "helper@example.com")

	resp := doJSON(t, app, "DELETE", "/api/admin/"+id, nil, superToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	readBody(t, resp)

	var count int64
	database.DB.Model(&models.Admin{}).Where("id = ?", id).Count(&count)
	assert.EqualValues(t, 0, count)

	resp = doJSON(t, app, "DELETE", "/api/admin/"+id, nil, superToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	readBody(t, resp)
}

// The super admin account can never be altered, suspended or deleted, not
// even by itself.
func TestSuperAdminIsImmutable(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	superToken := registerAdmin(t, app, superEmail, "Boss", "superpass1")
	id := adminID(t, superEmail)

	resp := doJSON(t, app, "PUT", "/api/admin/"+id+"/access",
		fiber.Map{"access_level": "basic"}, superToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)

	resp = doJSON(t, app, "PUT", "/api/admin/"+id+"/suspend",
		fiber.Map{"suspended": true, "reason": "nope"}, superToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)

	resp = doJSON(t, app, "DELETE", "/api/admin/"+id, nil, superToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)

	var admin models.Admin
	require.NoError(t, database.DB.Where("email = ?", superEmail).First(&admin).Error)
	assert.Equal(t, models.AccessSuper, admin.AccessLevel)
	assert.False(t, admin.Suspended)
}

func TestStats(t *testing.T) {
	database.InitTest()
	cfg := testConfig()
	sender := &captureSender{}
	app := newTestApp(cfg, sender)
	superToken := registerAdmin(t, app, superEmail, "Boss", "superpass1")

	require.NoError(t, database.DB.Create(&models.Booking{
		FullName: "Leo", Email: "leo@example.com", Phone: "1", ServiceName: "Mixing",
		PreferredDate: "2026-09-10", PreferredTime: "14:00", Status: models.BookingPending,
	}).Error)
	require.NoError(t, database.DB.Create(&models.Booking{
		FullName: "Ana", Email: "ana@example.com", Phone: "2", ServiceName: "Dubbing",
		PreferredDate: "2026-09-11", PreferredTime: "10:00", Status: models.BookingConfirmed,
	}).Error)

	resp := doJSON(t, app, "GET", "/api/admin/stats", nil, superToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.EqualValues(t, 2, body["total_bookings"])
	assert.EqualValues(t, 1, body["pending_bookings"])
	assert.EqualValues(t, 1, body["confirmed_bookings"])
	assert.EqualValues(t, 0, body["completed_bookings"])
}
