package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"buildtrack/application/serviceimpl"
	"buildtrack/domain/models"
	"buildtrack/infrastructure/postgres"
	"buildtrack/interfaces/api/handlers"
	"buildtrack/interfaces/api/middleware"
	"buildtrack/interfaces/api/routes"
)

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	h := handlers.NewHandlers(&handlers.Services{
		SchemaService:   serviceimpl.NewSchemaService(db),
		TaskService:     serviceimpl.NewTaskService(postgres.NewTaskRepository(db)),
		LaborService:    serviceimpl.NewLaborService(postgres.NewLaborRepository(db)),
		MaterialService: serviceimpl.NewMaterialService(postgres.NewMaterialRepository(db)),
		UploadMaxBytes:  2 * 1024 * 1024,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(app, h)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)

	return resp, env
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/health", "/api/health"} {
		resp, env := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.OK)
	}
}

func TestBootstrapIdempotent(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 3; i++ {
		resp, env := doJSON(t, app, http.MethodPost, "/api/bootstrap", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.OK)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/tasks", `{"title":"Paint wall"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.OK)

	var task map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.Equal(t, "Paint wall", task["title"])
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, 0.0, task["amount"])
	assert.NotZero(t, task["id"])
	assert.NotEmpty(t, task["created_at"])
}

func TestCreateTaskMissingTitle(t *testing.T) {
	app, db := newTestApp(t)

	cases := []string{`{}`, `{"title":""}`, `{"status":"doing"}`}
	for _, body := range cases {
		resp, env := doJSON(t, app, http.MethodPost, "/api/tasks", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.OK)
		assert.Equal(t, "title is required", env.Error)
	}

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count, "rejected requests must not insert rows")
}

func TestListTasksNewestFirst(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/tasks", `{"title":"Demolition"}`)
	doJSON(t, app, http.MethodPost, "/api/tasks", `{"title":"Framing","status":"doing","amount":1250.5}`)

	resp, env := doJSON(t, app, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.OK)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Framing", tasks[0]["title"])
	assert.Equal(t, 1250.5, tasks[0]["amount"])
	assert.Equal(t, "Demolition", tasks[1]["title"])
}

func TestCreateLaborComputesTotal(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/labor",
		`{"worker_name":"Ana","role":"electrician","hours":8,"rate":42.5}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.OK)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, 340.0, entry["total"])
}

func TestCreateLaborZeroHoursRejected(t *testing.T) {
	app, _ := newTestApp(t)

	// 0 is numerically valid but reads as missing on this endpoint.
	resp, env := doJSON(t, app, http.MethodPost, "/api/labor",
		`{"worker_name":"Ana","hours":0,"rate":42.5}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.OK)
	assert.Equal(t, "hours is required", env.Error)

	resp, env = doJSON(t, app, http.MethodPost, "/api/labor",
		`{"worker_name":"Ana","hours":8,"rate":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "rate is required", env.Error)
}

func TestCreateMaterialZeroValuesAllowed(t *testing.T) {
	app, _ := newTestApp(t)

	// Unlike labor, an explicit 0 passes the materials presence check.
	resp, env := doJSON(t, app, http.MethodPost, "/api/materials",
		`{"item_name":"Reclaimed bricks","quantity":500,"unit_cost":0}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.OK)

	var material map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &material))
	assert.Equal(t, 0.0, material["total"])
}

func TestCreateMaterialMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/materials",
		`{"item_name":"Cement","unit_cost":7.25}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "quantity is required", env.Error)
}

func TestMaterialURLRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/materials/url",
		`{"item_name":"Gravel","quantity":1,"unit_cost":30,"image_url":"http://x/y.png"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.OK)

	resp, env = doJSON(t, app, http.MethodGet, "/api/materials", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var materials []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &materials))
	require.Len(t, materials, 1)
	assert.Equal(t, "http://x/y.png", materials[0]["image_url"])
	// A URL reference is not a stored file.
	assert.Equal(t, false, materials[0]["has_file"])
}

func TestMaterialURLRequired(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/materials/url",
		`{"item_name":"Gravel","quantity":1,"unit_cost":30}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "image_url is required", env.Error)
}

func uploadRequest(t *testing.T, fields map[string]string, filename, mimeType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if data != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
		header.Set("Content-Type", mimeType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/materials/upload", &buf)
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestMaterialUploadAndImageDownload(t *testing.T) {
	app, _ := newTestApp(t)

	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	req := uploadRequest(t, map[string]string{
		"item_name": "Tiles",
		"category":  "flooring",
		"quantity":  "40",
		"unit_cost": "2.5",
	}, "tiles.png", "image/png", png)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.True(t, env.OK)

	var material map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &material))
	assert.Equal(t, "Tiles", material["item_name"])
	assert.Equal(t, 100.0, material["total"])
	id := int64(material["id"].(float64))

	// has_file must flip on for the uploaded material.
	listResp, listEnv := doJSON(t, app, http.MethodGet, "/api/materials", "")
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var materials []map[string]any
	require.NoError(t, json.Unmarshal(listEnv.Data, &materials))
	require.Len(t, materials, 1)
	assert.Equal(t, true, materials[0]["has_file"])

	// The raw download bypasses the JSON envelope.
	imgReq, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/materials/%d/image", id), nil)
	require.NoError(t, err)
	imgResp, err := app.Test(imgReq, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, imgResp.StatusCode)
	assert.Equal(t, "image/png", imgResp.Header.Get(fiber.HeaderContentType))
	body, err := io.ReadAll(imgResp.Body)
	require.NoError(t, err)
	assert.Equal(t, png, body)
}

func TestMaterialUploadMissingFile(t *testing.T) {
	app, db := newTestApp(t)

	req := uploadRequest(t, map[string]string{
		"item_name": "Tiles",
		"quantity":  "40",
		"unit_cost": "2.5",
	}, "", "", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Material{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMaterialUploadTooLarge(t *testing.T) {
	app, db := newTestApp(t)

	big := make([]byte, 2*1024*1024+1)
	req := uploadRequest(t, map[string]string{
		"item_name": "Tiles",
		"quantity":  "40",
		"unit_cost": "2.5",
	}, "big.jpg", "image/jpeg", big)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Material{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMaterialUploadMissingField(t *testing.T) {
	app, _ := newTestApp(t)

	req := uploadRequest(t, map[string]string{
		"item_name": "Tiles",
		"unit_cost": "2.5",
	}, "tiles.png", "image/png", []byte{0x89})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "quantity is required", env.Error)
}

func TestGetImageNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	// Material without any stored image.
	doJSON(t, app, http.MethodPost, "/api/materials",
		`{"item_name":"Rebar","quantity":100,"unit_cost":1.2}`)

	req, err := http.NewRequest(http.MethodGet, "/api/materials/1/image", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Plain text, not the JSON envelope.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "No image", string(body))
}

func TestGetImageServesNewest(t *testing.T) {
	app, db := newTestApp(t)

	png := []byte("old-bytes")
	req := uploadRequest(t, map[string]string{
		"item_name": "Paint",
		"quantity":  "5",
		"unit_cost": "22",
	}, "paint.png", "image/png", png)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var material map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &material))
	id := int64(material["id"].(float64))

	// Second image for the same material supersedes the first.
	require.NoError(t, db.Create(&models.MaterialImage{
		MaterialID: id,
		MimeType:   "image/jpeg",
		Data:       []byte("new-bytes"),
	}).Error)

	imgReq, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/materials/%d/image", id), nil)
	require.NoError(t, err)
	imgResp, err := app.Test(imgReq, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, imgResp.StatusCode)
	assert.Equal(t, "image/jpeg", imgResp.Header.Get(fiber.HeaderContentType))
	body, err := io.ReadAll(imgResp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("new-bytes"), body)
}

func TestGetImageInvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	req, err := http.NewRequest(http.MethodGet, "/api/materials/abc/image", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
