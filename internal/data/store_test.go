package data

import (
	"testing"
	"time"

	"price-optimizer/internal/model"
)

func storeDataset(t *testing.T) *model.Dataset {
	t.Helper()
	ds, err := model.NewDataset("test", []model.TransactionRecord{
		{CurrentPrice: 10, Category: "Shoes"},
		{CurrentPrice: 12, Category: "Shoes"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestStore_PutGetDelete(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Close()

	stored := s.Put(storeDataset(t))
	if stored.ID == "" {
		t.Fatal("Put() returned empty ID")
	}

	got, ok := s.Get(stored.ID)
	if !ok {
		t.Fatal("Get() did not find stored dataset")
	}
	if got.Dataset.Name != "test" {
		t.Errorf("dataset name = %q, want test", got.Dataset.Name)
	}

	if !s.Delete(stored.ID) {
		t.Error("Delete() returned false for present dataset")
	}
	if _, ok := s.Get(stored.ID); ok {
		t.Error("Get() found dataset after delete")
	}
	if s.Delete(stored.ID) {
		t.Error("Delete() returned true for absent dataset")
	}
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(time.Millisecond)
	defer s.Close()

	stored := s.Put(storeDataset(t))
	time.Sleep(5 * time.Millisecond)

	if _, ok := s.Get(stored.ID); ok {
		t.Error("Get() returned expired dataset")
	}
	if len(s.List()) != 0 {
		t.Error("List() returned expired dataset")
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Close()

	first := s.Put(storeDataset(t))
	time.Sleep(2 * time.Millisecond)
	second := s.Put(storeDataset(t))

	items := s.List()
	if len(items) != 2 {
		t.Fatalf("List() = %d items, want 2", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("List() not sorted newest first")
	}
}
