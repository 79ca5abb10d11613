package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "post_studio/internal/api/auth/models"
	basesvc "post_studio/internal/api/base/service"
	"post_studio/internal/api/events"
	"post_studio/internal/common"
	"post_studio/internal/global"
	"post_studio/internal/logger"
	"post_studio/internal/utility"
)

// AuthManager quản lý việc xác thực người dùng
type AuthManager struct {
	UserCRUD basesvc.BaseServiceMongo[authmodels.User]
	Cache    *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về singleton instance của AuthManager
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
		authManager = &AuthManager{
			UserCRUD: basesvc.NewBaseServiceMongo[authmodels.User](userCol),
			Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
		}

		// User thay đổi (login/logout/block) thì token cache không còn tin được
		events.OnDataChanged(func(ctx context.Context, event events.DataChangeEvent) {
			if event.CollectionName == global.MongoDB_ColNames.Users {
				authManager.Cache.Clear()
			}
		})
	})
	return authManager
}

// findUserByToken tìm user sở hữu token. Token có thể nằm ở field token
// (token mới nhất) hoặc trong mảng tokens (token theo từng thiết bị).
func (m *AuthManager) findUserByToken(c fiber.Ctx, token string) (*authmodels.User, error) {
	if cached, ok := m.Cache.Get(token); ok {
		if user, ok := cached.(*authmodels.User); ok {
			return user, nil
		}
	}

	user, err := m.UserCRUD.FindOne(c.Context(), map[string]interface{}{"token": token}, nil)
	if err != nil {
		user, err = m.UserCRUD.FindOne(c.Context(), map[string]interface{}{
			"tokens": bson.M{"$elemMatch": bson.M{"jwtToken": token}},
		}, nil)
		if err != nil {
			return nil, err
		}
	}

	m.Cache.Set(token, &user)
	return &user, nil
}

// AuthMiddleware trả về middleware xác thực cho các route cần đăng nhập.
// Sau khi xác thực thành công, user_id và user được set vào Locals để
// BaseHandler dùng owner-scope dữ liệu.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		manager := GetAuthManager()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		user, err := manager.findUserByToken(c, token)
		if err != nil {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"path": c.Path(),
			}).Warn("❌ [AUTH] Token không tồn tại hoặc đã bị thu hồi")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil))
			return nil
		}

		c.Locals("user_id", user.ID)
		c.Locals("user", user)

		return c.Next()
	}
}
