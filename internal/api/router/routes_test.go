package router

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// stubCRUDHandler đủ để đăng ký route, không chạm database.
type stubCRUDHandler struct{}

func (stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return nil }
func (stubCRUDHandler) InsertMany(c fiber.Ctx) error         { return nil }
func (stubCRUDHandler) Find(c fiber.Ctx) error               { return nil }
func (stubCRUDHandler) FindOne(c fiber.Ctx) error            { return nil }
func (stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return nil }
func (stubCRUDHandler) FindManyByIds(c fiber.Ctx) error      { return nil }
func (stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return nil }
func (stubCRUDHandler) UpdateOne(c fiber.Ctx) error          { return nil }
func (stubCRUDHandler) UpdateMany(c fiber.Ctx) error         { return nil }
func (stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return nil }
func (stubCRUDHandler) FindOneAndUpdate(c fiber.Ctx) error   { return nil }
func (stubCRUDHandler) DeleteOne(c fiber.Ctx) error          { return nil }
func (stubCRUDHandler) DeleteMany(c fiber.Ctx) error         { return nil }
func (stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return nil }
func (stubCRUDHandler) FindOneAndDelete(c fiber.Ctx) error   { return nil }
func (stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return nil }
func (stubCRUDHandler) Distinct(c fiber.Ctx) error           { return nil }
func (stubCRUDHandler) Upsert(c fiber.Ctx) error             { return nil }
func (stubCRUDHandler) UpsertMany(c fiber.Ctx) error         { return nil }
func (stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return nil }

func registeredPaths(app *fiber.App) map[string]bool {
	paths := make(map[string]bool)
	// true: lọc bỏ các route middleware (Use) của group
	for _, route := range app.GetRoutes(true) {
		paths[route.Method+" "+route.Path] = true
	}
	return paths
}

// Model có vòng đời (validate + derive status trong handler override) chỉ được
// mở insert-one và update-by-id; mọi đường ghi generic khác phải đóng để client
// không ghi thẳng document bỏ qua validate.
func TestLifecycleWriteConfig_DongDuongGhiGeneric(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	r.RegisterCRUDRoutes(app, "/posts", stubCRUDHandler{}, LifecycleWriteConfig)

	paths := registeredPaths(app)

	for _, want := range []string{
		"POST /posts/insert-one",
		"PUT /posts/update-by-id/:id",
		"GET /posts/find",
		"GET /posts/find-with-pagination",
		"DELETE /posts/delete-by-id/:id",
	} {
		if !paths[want] {
			t.Errorf("LifecycleWriteConfig thiếu route %q", want)
		}
	}

	for _, blocked := range []string{
		"POST /posts/insert-many",
		"PUT /posts/update-one",
		"PUT /posts/update-many",
		"PUT /posts/find-one-and-update",
		"POST /posts/upsert-one",
		"POST /posts/upsert-many",
	} {
		if paths[blocked] {
			t.Errorf("LifecycleWriteConfig không được mở route ghi generic %q", blocked)
		}
	}
}

func TestReadOnlyConfig_KhongMoRouteGhi(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	r.RegisterCRUDRoutes(app, "/analytics", stubCRUDHandler{}, ReadOnlyConfig)

	for path := range registeredPaths(app) {
		if strings.HasPrefix(path, "POST ") || strings.HasPrefix(path, "PUT ") || strings.HasPrefix(path, "DELETE ") {
			// find-by-ids là đường đọc dù dùng method POST
			if path == "POST /analytics/find-by-ids" {
				continue
			}
			t.Errorf("ReadOnlyConfig không được mở route ghi %q", path)
		}
	}
}
