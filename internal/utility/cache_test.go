package utility

import (
	"testing"
	"time"
)

func TestCache_SetGetDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)

	cache.Set("key", "value")
	got, ok := cache.Get("key")
	if !ok || got != "value" {
		t.Errorf("Get sau Set = (%v, %v), muốn (value, true)", got, ok)
	}

	cache.Delete("key")
	if _, ok := cache.Get("key"); ok {
		t.Error("Get sau Delete vẫn tìm thấy key")
	}
}

// Entry chỉ bị loại khi quá ttl; chu kỳ dọn dẹp không được xóa entry còn hạn.
func TestCache_TTLTheoTungEntry(t *testing.T) {
	cache := NewCache(30*time.Millisecond, 5*time.Millisecond)

	cache.Set("ngan", "a")
	time.Sleep(15 * time.Millisecond)
	cache.Set("moi", "b")

	// "ngan" vẫn còn hạn dù đã qua vài chu kỳ dọn dẹp
	if _, ok := cache.Get("ngan"); !ok {
		t.Error("entry còn hạn bị dọn dẹp xóa sớm")
	}

	time.Sleep(25 * time.Millisecond)

	// "ngan" đã quá 30ms, "moi" mới 25ms nên vẫn còn
	if _, ok := cache.Get("ngan"); ok {
		t.Error("entry quá ttl vẫn đọc được từ cache")
	}
	if _, ok := cache.Get("moi"); !ok {
		t.Error("entry còn hạn bị xóa theo entry đã hết hạn")
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()

	if _, ok := cache.Get("a"); ok {
		t.Error("Clear không xóa hết cache")
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("Clear không xóa hết cache")
	}
}
