package basehdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ownedDoc là model có owner, plainDoc là model không có owner
type ownedDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID primitive.ObjectID `bson:"ownerId"`
	Title   string             `bson:"title"`
	Count   int64              `bson:"count"`
}

type plainDoc struct {
	Name string `bson:"name"`
}

func TestHasOwnerIDField(t *testing.T) {
	owned := &BaseHandler[ownedDoc, ownedDoc, ownedDoc]{}
	if !owned.hasOwnerIDField() {
		t.Error("hasOwnerIDField phải trả về true với model có field OwnerID")
	}

	plain := &BaseHandler[plainDoc, plainDoc, plainDoc]{}
	if plain.hasOwnerIDField() {
		t.Error("hasOwnerIDField phải trả về false với model không có field OwnerID")
	}
}

func TestSetOwnerID(t *testing.T) {
	h := &BaseHandler[ownedDoc, ownedDoc, ownedDoc]{}
	userID := primitive.NewObjectID()

	doc := &ownedDoc{Title: "demo"}
	h.setOwnerID(doc, userID)
	if doc.OwnerID != userID {
		t.Errorf("setOwnerID không gán owner: got %v, muốn %v", doc.OwnerID, userID)
	}

	// Model không có OwnerID thì bỏ qua, không panic
	plain := &plainDoc{Name: "demo"}
	(&BaseHandler[plainDoc, plainDoc, plainDoc]{}).setOwnerID(plain, userID)
}

func TestBuildPartialUpdate_LoaiBoOwnerVaID(t *testing.T) {
	h := &BaseHandler[ownedDoc, ownedDoc, ownedDoc]{}
	doc := &ownedDoc{
		ID:      primitive.NewObjectID(),
		OwnerID: primitive.NewObjectID(),
		Title:   "tiêu đề mới",
	}

	update, err := h.buildPartialUpdate(doc)
	if err != nil {
		t.Fatalf("buildPartialUpdate trả về lỗi: %v", err)
	}
	if _, ok := update.Set["ownerId"]; ok {
		t.Error("buildPartialUpdate không được đưa ownerId vào $set")
	}
	if _, ok := update.Set["_id"]; ok {
		t.Error("buildPartialUpdate không được đưa _id vào $set")
	}
	if update.Set["title"] != "tiêu đề mới" {
		t.Errorf("buildPartialUpdate thiếu field title: %v", update.Set)
	}
}

func TestBuildPartialUpdate_BoQuaZeroValue(t *testing.T) {
	h := &BaseHandler[ownedDoc, ownedDoc, ownedDoc]{}
	doc := &ownedDoc{Title: "chỉ đổi title"}

	update, err := h.buildPartialUpdate(doc)
	if err != nil {
		t.Fatalf("buildPartialUpdate trả về lỗi: %v", err)
	}
	if _, ok := update.Set["count"]; ok {
		t.Error("buildPartialUpdate không được đưa field zero value vào $set")
	}
}
