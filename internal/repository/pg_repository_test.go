package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ahpc/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testPool connects to TEST_DATABASE_URL, applies the schema and empties
// every table. The test is skipped when no database is available.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../migrations/001_init.up.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE sessions, users, activities, gallery, contact_messages`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestPgActivityRepository_CRUD(t *testing.T) {
	pool := testPool(t)
	repo := NewPgActivityRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	older := &model.Activity{Title: "Winter", Date: "2024-01-10", Category: "shelter",
		ShortDescription: "s", FullDescription: "f", CreatedAt: now, Published: true}
	newer := &model.Activity{Title: "Camp", Date: "2024-07-15", Category: "education",
		ShortDescription: "s", FullDescription: "f", CreatedAt: now, Published: false}
	for _, a := range []*model.Activity{older, newer} {
		if err := repo.Insert(ctx, a); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if a.ID == "" {
			t.Fatal("expected ID to be set after Insert")
		}
	}

	list, err := repo.List(ctx, model.ActivityListOptions{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	filtered, _ := repo.List(ctx, model.ActivityListOptions{Category: "shelter"})
	if len(filtered) != 1 || filtered[0].ID != older.ID {
		t.Errorf("unexpected category filter result %+v", filtered)
	}
	limited, _ := repo.List(ctx, model.ActivityListOptions{Category: "all", Limit: 1})
	if len(limited) != 1 {
		t.Errorf("expected limit 1, got %d", len(limited))
	}

	published := true
	title := "Summer Camp"
	if err := repo.Update(ctx, newer.ID, model.ActivityPatch{Title: &title, Published: &published}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := repo.Get(ctx, newer.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Summer Camp" || !got.Published || got.Date != "2024-07-15" || got.Category != "education" {
		t.Errorf("unexpected activity after update %+v", got)
	}

	if err := repo.Update(ctx, "missing", model.ActivityPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// an empty patch still reports unknown ids
	if err := repo.Update(ctx, "missing", model.ActivityPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty patch: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, newer.ID, model.ActivityPatch{}); err != nil {
		t.Errorf("empty patch on existing id: %v", err)
	}

	if err := repo.Delete(ctx, newer.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, newer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPgGalleryRepository(t *testing.T) {
	pool := testPool(t)
	repo := NewPgGalleryRepository(pool)
	ctx := context.Background()

	img := &model.GalleryImage{URL: "/uploads/gallery/1_a.jpg", Caption: "Art", Category: "events", CreatedAt: time.Now().UTC()}
	if err := repo.Insert(ctx, img); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	list, err := repo.List(ctx, model.GalleryListOptions{Category: "events"})
	if err != nil || len(list) != 1 || list[0].Caption != "Art" {
		t.Fatalf("unexpected list %+v, %v", list, err)
	}
	if err := repo.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, img.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPgContactRepository_Inbox(t *testing.T) {
	pool := testPool(t)
	repo := NewPgContactRepository(pool)
	ctx := context.Background()

	base := time.Now().UTC()
	var ids []string
	for i := 0; i < 3; i++ {
		msg := &model.ContactMessage{
			Name:      fmt.Sprintf("Sender %d", i),
			Email:     "a@x.com",
			Message:   "Hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Save(ctx, msg); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		ids = append(ids, msg.ID)
	}

	if n, _ := repo.CountUnread(ctx); n != 3 {
		t.Errorf("expected 3 unread, got %d", n)
	}
	if err := repo.MarkRead(ctx, ids[0]); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	// a second call succeeds too
	if err := repo.MarkRead(ctx, ids[0]); err != nil {
		t.Errorf("second MarkRead failed: %v", err)
	}
	if err := repo.MarkRead(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	unread, _ := repo.List(ctx, model.ContactListOptions{Status: "unread"})
	if len(unread) != 2 || unread[0].ID != ids[2] {
		t.Errorf("expected 2 unread newest first, got %+v", unread)
	}
	read, _ := repo.List(ctx, model.ContactListOptions{Status: "read"})
	if len(read) != 1 || read[0].ID != ids[0] {
		t.Errorf("expected 1 read message, got %+v", read)
	}
	limited, _ := repo.List(ctx, model.ContactListOptions{Status: "all", Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected limit 2, got %d", len(limited))
	}

	if err := repo.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n, _ := repo.CountUnread(ctx); n != 1 {
		t.Errorf("expected 1 unread after delete, got %d", n)
	}
}

func TestPgUserAndSessionRepository(t *testing.T) {
	pool := testPool(t)
	users := NewPgUserRepository(pool)
	sessions := NewPgSessionRepository(pool)
	ctx := context.Background()

	u := &model.User{Email: "  Admin@Example.org ", Name: "Admin", PasswordHash: "hash"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	found, err := users.FindByEmail(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if found.ID != u.ID || found.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", found)
	}
	if err := users.UpdatePassword(ctx, u.ID, "hash2"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	if _, err := users.FindByEmail(ctx, "nobody@example.org"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	now := time.Now().UTC()
	s := &model.Session{ClientID: "c1", UserID: u.ID, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	if err := sessions.Upsert(ctx, s); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	got, err := sessions.FindByClientID(ctx, "c1")
	if err != nil || got.UserID != u.ID {
		t.Fatalf("unexpected session %+v, %v", got, err)
	}

	// expired sessions are not found
	s.ExpiresAt = now.Add(-time.Minute)
	if err := sessions.Upsert(ctx, s); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := sessions.FindByClientID(ctx, "c1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for expired session, got %v", err)
	}

	if err := sessions.DeleteByClientID(ctx, "c1"); err != nil {
		t.Fatalf("DeleteByClientID failed: %v", err)
	}
}
