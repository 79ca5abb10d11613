package global

import (
	"post_studio/config"
	"post_studio/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Posts         string // Tên collection cho bài đăng
	PostAnalytics string // Tên collection cho số liệu tương tác của bài đăng
	AiGenerations string // Tên collection cho lịch sử sinh nội dung AI
}

// Trạng thái vòng đời của bài đăng. draft và scheduled do người dùng tạo ra;
// published và failed chỉ được set bởi hệ thống publish bên ngoài.
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

// SupportedPlatforms là danh sách nền tảng được hỗ trợ.
// Hiện tại chỉ có facebook, giữ dạng slice để mở rộng đa nền tảng sau này.
var SupportedPlatforms = []string{"facebook"}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
