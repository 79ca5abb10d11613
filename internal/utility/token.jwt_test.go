package utility

import "testing"

func TestCreateToken_ParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "64f1a2b3c4d5e6f708192a3b"

	result, err := CreateToken(secret, userID, "18f2a", "42")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	signed := result["token"]
	if signed == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	parsed, err := ParseToken(secret, signed)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi: %v", err)
	}
	if parsed != userID {
		t.Errorf("ParseToken = %q, muốn %q", parsed, userID)
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "user-1", "18f2a", "7")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if _, err := ParseToken("secret-b", result["token"]); err == nil {
		t.Error("ParseToken với secret sai phải trả về lỗi")
	}
}

// Hai lần đăng nhập với random number khác nhau phải sinh token khác nhau.
func TestCreateToken_MoiPhienMotToken(t *testing.T) {
	first, err := CreateToken("secret", "user-1", "18f2a", "1")
	if err != nil {
		t.Fatalf("CreateToken lần 1 trả về lỗi: %v", err)
	}
	second, err := CreateToken("secret", "user-1", "18f2a", "2")
	if err != nil {
		t.Fatalf("CreateToken lần 2 trả về lỗi: %v", err)
	}
	if first["token"] == second["token"] {
		t.Error("Hai phiên đăng nhập khác nhau không được sinh cùng một token")
	}
}
